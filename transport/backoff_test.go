package transport

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBackoff_Step_Is_Monotonic_And_Bounded(t *testing.T) {
	req := require.New(t)
	backoff := DefaultBackoff()

	previous := time.Duration(0)
	for attempt := 1; attempt <= 100; attempt++ {
		step := backoff.Step(attempt)
		req.GreaterOrEqual(step, previous, "attempt %d", attempt)
		req.LessOrEqual(step, DefaultMaxDelay, "attempt %d", attempt)
		previous = step
	}
	req.Equal(time.Second, backoff.Step(1))
	req.Equal(2*time.Second, backoff.Step(2))
	req.Equal(16*time.Second, backoff.Step(5))
	req.Equal(30*time.Second, backoff.Step(6))
	req.Equal(30*time.Second, backoff.Step(10_000))
}

func TestBackoff_Delay_Adds_Bounded_Jitter(t *testing.T) {
	req := require.New(t)
	backoff := DefaultBackoff()

	for attempt := 1; attempt <= 10; attempt++ {
		for range 50 {
			delay := backoff.Delay(attempt)
			req.GreaterOrEqual(delay, backoff.Step(attempt))
			req.Less(delay, backoff.Step(attempt)+DefaultJitter)
		}
	}
}

func TestBackoff_Without_Jitter(t *testing.T) {
	req := require.New(t)
	backoff := Backoff{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

	req.Equal(100*time.Millisecond, backoff.Delay(1))
	req.Equal(800*time.Millisecond, backoff.Delay(4))
	req.Equal(time.Second, backoff.Delay(5))
	req.Equal(time.Duration(0), Backoff{}.Delay(3))
}

func TestBackoff_Without_Max_Delay_Never_Overflows(t *testing.T) {
	req := require.New(t)
	backoff := Backoff{BaseDelay: time.Second}

	// A long outage must keep a positive, bounded delay
	for _, attempt := range []int{1, 6, 64, 100, 10_000} {
		step := backoff.Step(attempt)
		req.Positive(step, "attempt %d", attempt)
		req.LessOrEqual(step, DefaultMaxDelay, "attempt %d", attempt)
	}
	req.Equal(DefaultMaxDelay, backoff.Step(10_000))

	huge := Backoff{BaseDelay: time.Second, MaxDelay: time.Duration(math.MaxInt64)}
	req.Positive(huge.Step(10_000))
}
