package retry

import (
	"time"
)

type Strategy string

const (
	FixedStrategy   Strategy = "fixed"
	BackoffStrategy Strategy = "backoff"
)

// Stop tells the caller to give up instead of sleeping.
const Stop time.Duration = -1

type Retry interface {
	// NextDelay returns the delay before attempt n+1 given that n
	// attempts have been made, or Stop when the budget is exhausted.
	NextDelay(attempts int) time.Duration
}

type Option func(Retry)

func NewRetry(strategy Strategy, opts ...Option) Retry {
	var retry Retry
	switch strategy {
	case FixedStrategy:
		retry = newFixedStrategyRetry()
	case BackoffStrategy:
		retry = newBackoffStrategyRetry()
	default:
		panic("invalid strategy: " + strategy)
	}
	for _, opt := range opts {
		opt(retry)
	}
	return retry
}
