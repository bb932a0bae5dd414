package ratelimit

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically evicts expired rate limit entries.
type Sweeper struct {
	log      *slog.Logger
	limiter  *RateLimiter
	interval time.Duration
}

func NewSweeper(log *slog.Logger, limiter *RateLimiter, interval time.Duration) *Sweeper {
	return &Sweeper{log: log, limiter: limiter, interval: interval}
}

func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if evicted := s.limiter.Sweep(); evicted > 0 {
				s.log.Debug("Rate limit entries evicted", "count", evicted)
			}
		}
	}
}
