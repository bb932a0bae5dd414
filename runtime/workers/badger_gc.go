package workers

import (
	"chatbot/errors"
	"context"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	DefaultGCInterval = 5 * time.Minute
	gcDiscardRatio    = 0.5
)

// BadgerGCWorker reclaims value log space left behind by expired lock entries.
type BadgerGCWorker struct {
	log      *slog.Logger
	db       *badger.DB
	interval time.Duration
}

func NewBadgerGCWorker(log *slog.Logger, db *badger.DB, interval time.Duration) *BadgerGCWorker {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &BadgerGCWorker{log: log, db: db, interval: interval}
}

func (w *BadgerGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.collect(ctx)
		}
	}
}

// collect rewrites value log files until badger reports nothing left to reclaim.
func (w *BadgerGCWorker) collect(ctx context.Context) int {
	rewritten := 0
	for ctx.Err() == nil {
		err := w.db.RunValueLogGC(gcDiscardRatio)
		if err != nil {
			if !errors.Is(err, badger.ErrNoRewrite) && !errors.Is(err, badger.ErrRejected) {
				w.log.Warn("Badger value log GC failed", "err", err)
			}
			break
		}
		rewritten++
	}
	if rewritten > 0 {
		w.log.Debug("Badger value log GC done", "rewritten", rewritten)
	}
	return rewritten
}
