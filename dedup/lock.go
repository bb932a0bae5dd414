package dedup

import (
	"chatbot/contract"
	"chatbot/errors"
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultTTL   = 60 * time.Second
	DefaultLimit = 1
	KeyPrefix    = "lock:"
)

// Lock is a TTL bounded acquire-once gate keyed by message identifier.
// Within one TTL window at most `limit` callers acquire a given key.
// The TTL is the release mechanism; Release exists for callers that want to reopen a key early.
type Lock struct {
	log   *slog.Logger
	store contract.LockStore
}

func NewLock(log *slog.Logger, store contract.LockStore) *Lock {
	return &Lock{log: log, store: store}
}

// Acquire returns true only for the first `limit` callers within the TTL window.
// A store failure is reported as an error wrapping errors.ErrLockStoreUnavailable, never as false.
func (l *Lock) Acquire(ctx context.Context, key string, ttl time.Duration, limit int) (bool, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	count, err := l.store.Increment(ctx, KeyPrefix+key, ttl)
	if err != nil {
		if errors.Is(err, errors.ErrLockStoreUnavailable) {
			return false, err
		}
		return false, fmt.Errorf("acquire %q: %w: %w", key, errors.ErrLockStoreUnavailable, err)
	}
	acquired := count <= limit
	if !acquired {
		l.log.Debug("Lock already held", "key", key, "count", count, "limit", limit)
	}
	return acquired, nil
}

func (l *Lock) Release(ctx context.Context, key string) error {
	if err := l.store.Delete(ctx, KeyPrefix+key); err != nil {
		return fmt.Errorf("release %q: %w: %w", key, errors.ErrLockStoreUnavailable, err)
	}
	return nil
}
