package retry

import (
	"math"
	"time"
)

// BackoffStrategyRetry grows the delay exponentially: the delay before
// attempt n+1 is baseDelay * multiplier^(n-1).
type BackoffStrategyRetry struct {
	maxAttempts int
	baseDelay   time.Duration
	multiplier  float64
}

func newBackoffStrategyRetry() *BackoffStrategyRetry {
	return &BackoffStrategyRetry{
		maxAttempts: 1,
		multiplier:  1,
	}
}

func WithMaxAttempts(attempts int) Option {
	return func(r Retry) {
		retry := r.(*BackoffStrategyRetry)
		retry.maxAttempts = attempts
	}
}

func WithBaseDelay(delay time.Duration) Option {
	return func(r Retry) {
		retry := r.(*BackoffStrategyRetry)
		retry.baseDelay = delay
	}
}

func WithMultiplier(multiplier float64) Option {
	return func(r Retry) {
		retry := r.(*BackoffStrategyRetry)
		retry.multiplier = multiplier
	}
}

func (r *BackoffStrategyRetry) NextDelay(attempts int) time.Duration {
	if attempts >= r.maxAttempts {
		return Stop
	}
	factor := math.Pow(r.multiplier, float64(attempts-1))
	return time.Duration(float64(r.baseDelay) * factor)
}
