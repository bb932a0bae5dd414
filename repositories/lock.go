package repositories

import (
	"chatbot/domain"
	"chatbot/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// maxConflictRetries bounds how many times an increment is replayed after losing a write race.
const maxConflictRetries = 256

// BadgerLockStore keeps dedup lock counters in BadgerDB.
// Each Increment is a read-write transaction: two concurrent increments of the same key
// make one of them fail on commit with badger.ErrConflict, and that one is replayed.
// The logical expiry is stored in the value; the badger TTL only garbage collects the key.
type BadgerLockStore struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewBadgerLockStore(db *badger.DB, log *slog.Logger, now func() time.Time) BadgerLockStore {
	if now == nil {
		now = time.Now
	}
	return BadgerLockStore{db: db, log: log, now: now}
}

func (s BadgerLockStore) Increment(ctx context.Context, key string, ttl time.Duration) (int, error) {
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		count, err := s.increment(key, ttl)
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", errors.ErrLockStoreUnavailable, err)
		}
		return count, nil
	}
	s.log.Warn("Lock increment kept conflicting", "key", key, "attempts", maxConflictRetries)
	return 0, fmt.Errorf("%w: too many conflicts on %q", errors.ErrLockStoreUnavailable, key)
}

func (s BadgerLockStore) increment(key string, ttl time.Duration) (int, error) {
	var entry domain.LockEntry
	err := s.db.Update(func(txn *badger.Txn) error {
		now := s.now()
		entry = domain.LockEntry{}

		item, err := txn.Get([]byte(key))
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return err
		default:
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				return err
			}
		}

		if entry.Count == 0 || entry.Expired(now) {
			entry = domain.LockEntry{Key: key, ExpiresAtEpochMs: now.Add(ttl).UnixMilli()}
		}
		entry.Count++

		bytes, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		// Badger expiry has a one second resolution, keep the key a little longer than the window
		remaining := time.UnixMilli(entry.ExpiresAtEpochMs).Sub(now) + time.Second
		return txn.SetEntry(badger.NewEntry([]byte(key), bytes).WithTTL(remaining))
	})
	return entry.Count, err
}

func (s BadgerLockStore) Delete(_ context.Context, key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrLockStoreUnavailable, err)
	}
	return nil
}

// Entries returns the unexpired lock entries whose key starts with prefix.
func (s BadgerLockStore) Entries(_ context.Context, prefix string) ([]domain.LockEntry, error) {
	var entries []domain.LockEntry
	now := s.now()
	err := s.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(prefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var entry domain.LockEntry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				s.log.Warn("Skipping unreadable lock entry", "key", string(it.Item().Key()), "err", err)
				continue
			}
			if !entry.Expired(now) {
				entries = append(entries, entry)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrLockStoreUnavailable, err)
	}
	return entries, nil
}
