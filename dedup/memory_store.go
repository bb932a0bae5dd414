package dedup

import (
	"chatbot/domain"
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-process LockStore. A single mutex makes Increment a check-and-set.
type MemoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]domain.LockEntry
}

func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now, entries: make(map[string]domain.LockEntry)}
}

func (s *MemoryStore) Increment(_ context.Context, key string, ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || entry.Expired(now) {
		entry = domain.LockEntry{Key: key, ExpiresAtEpochMs: now.Add(ttl).UnixMilli()}
	}
	entry.Count++
	s.entries[key] = entry
	return entry.Count, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Entries returns the unexpired entries whose key starts with prefix, sorted by key.
func (s *MemoryStore) Entries(_ context.Context, prefix string) ([]domain.LockEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var entries []domain.LockEntry
	for key, entry := range s.entries {
		if strings.HasPrefix(key, prefix) && !entry.Expired(now) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Run sweeps the store once a minute until ctx is canceled.
func (s *MemoryStore) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}
