package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	assert.NotNil(t, NewRetry(FixedStrategy))
	assert.NotNil(t, NewRetry(BackoffStrategy))
	assert.Panics(t, func() { NewRetry("unknown") })
}

func TestFixedRetry(t *testing.T) {
	r := NewRetry(FixedStrategy)
	assert.Equal(t, Stop, r.NextDelay(1))
}

func TestFixedRetryWithOptions(t *testing.T) {
	r := NewRetry(FixedStrategy, WithFixedDelays([]time.Duration{
		time.Second * 1, time.Second * 2, time.Second * 3,
	}))
	assert.Equal(t, time.Second*1, r.NextDelay(1))
	assert.Equal(t, time.Second*2, r.NextDelay(2))
	assert.Equal(t, time.Second*3, r.NextDelay(3))
	assert.Equal(t, Stop, r.NextDelay(4))
}

func TestBackoffRetry(t *testing.T) {
	t.Run("defaults stop after one attempt", func(t *testing.T) {
		r := NewRetry(BackoffStrategy)
		assert.Equal(t, Stop, r.NextDelay(1))
	})

	t.Run("exponential growth", func(t *testing.T) {
		r := NewRetry(BackoffStrategy,
			WithMaxAttempts(4),
			WithBaseDelay(time.Millisecond*100),
			WithMultiplier(2),
		)
		assert.Equal(t, time.Millisecond*100, r.NextDelay(1))
		assert.Equal(t, time.Millisecond*200, r.NextDelay(2))
		assert.Equal(t, time.Millisecond*400, r.NextDelay(3))
		assert.Equal(t, Stop, r.NextDelay(4))
	})

	t.Run("multiplier one keeps the delay constant", func(t *testing.T) {
		r := NewRetry(BackoffStrategy,
			WithMaxAttempts(3),
			WithBaseDelay(time.Second),
			WithMultiplier(1),
		)
		assert.Equal(t, time.Second, r.NextDelay(1))
		assert.Equal(t, time.Second, r.NextDelay(2))
		assert.Equal(t, Stop, r.NextDelay(3))
	})
}
