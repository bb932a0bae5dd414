package transport

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	DefaultBaseDelay = time.Second
	DefaultMaxDelay  = 30 * time.Second
	DefaultJitter    = 500 * time.Millisecond
)

// Backoff computes reconnect delays: min(MaxDelay, BaseDelay * 2^(attempt-1)) plus a random jitter in [0, Jitter).
type Backoff struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Jitter    time.Duration
}

func DefaultBackoff() Backoff {
	return Backoff{BaseDelay: DefaultBaseDelay, MaxDelay: DefaultMaxDelay, Jitter: DefaultJitter}
}

// Step is the delay for the given attempt without jitter. Attempts start at 1.
// A MaxDelay of zero or less falls back to DefaultMaxDelay.
func (b Backoff) Step(attempt int) time.Duration {
	if b.BaseDelay <= 0 {
		return 0
	}
	maxDelay := b.MaxDelay
	if maxDelay <= 0 {
		maxDelay = DefaultMaxDelay
	}
	delay := b.BaseDelay
	for i := 1; i < attempt && delay < maxDelay && delay <= math.MaxInt64/2; i++ {
		delay *= 2
	}
	return min(delay, maxDelay)
}

func (b Backoff) Delay(attempt int) time.Duration {
	delay := b.Step(attempt)
	if b.Jitter > 0 {
		delay += time.Duration(rand.Int64N(int64(b.Jitter)))
	}
	return delay
}
