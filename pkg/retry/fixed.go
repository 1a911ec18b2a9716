package retry

import "time"

type FixedStrategyRetry struct {
	fixedDelays []time.Duration
}

func newFixedStrategyRetry() *FixedStrategyRetry {
	return &FixedStrategyRetry{}
}

func WithFixedDelays(delays []time.Duration) Option {
	return func(r Retry) {
		retry := r.(*FixedStrategyRetry)
		retry.fixedDelays = delays
	}
}

func (r *FixedStrategyRetry) NextDelay(attempts int) time.Duration {
	if attempts > len(r.fixedDelays) {
		return Stop
	}
	return r.fixedDelays[attempts-1]
}
