package ratelimit

import (
	"chatbot/domain"
	"log/slog"
	"sync"
	"time"
)

const (
	DefaultGroupDailyLimit   = 1000
	DefaultPrivateDailyLimit = 100
)

type Limits struct {
	Group   int
	Private int
}

func (l Limits) For(isGroup bool) int {
	if isGroup {
		return l.Group
	}
	return l.Private
}

// RateLimiter tracks a daily reply quota per recipient.
// Every entry resets at the next calendar day boundary of its location.
// All methods are safe for concurrent use; check and increment happen under one lock.
type RateLimiter struct {
	log      *slog.Logger
	mu       sync.Mutex
	limits   Limits
	location *time.Location
	now      func() time.Time
	entries  map[string]*domain.RateLimitEntry
}

type Option func(*RateLimiter)

func WithClock(now func() time.Time) Option {
	return func(r *RateLimiter) { r.now = now }
}

func WithLocation(location *time.Location) Option {
	return func(r *RateLimiter) { r.location = location }
}

func NewRateLimiter(log *slog.Logger, limits Limits, opts ...Option) *RateLimiter {
	r := &RateLimiter{
		log:      log,
		limits:   limits,
		location: time.UTC,
		now:      time.Now,
		entries:  make(map[string]*domain.RateLimitEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CanSend reports whether the recipient still has quota left in the current window.
func (r *RateLimiter) CanSend(recipientKey string, isGroup bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.entryLocked(recipientKey, isGroup, false)
	if entry == nil {
		return r.limits.For(isGroup) > 0
	}
	return entry.Count < r.limits.For(isGroup)
}

// RecordMessage charges one message to the recipient. The count never goes past the limit.
func (r *RateLimiter) RecordMessage(recipientKey string, isGroup bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.entryLocked(recipientKey, isGroup, true)
	if entry.Count < r.limits.For(isGroup) {
		entry.Count++
	}
}

// Reserve is CanSend and RecordMessage as a single atomic step.
func (r *RateLimiter) Reserve(recipientKey string, isGroup bool) (domain.Reservation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := r.limits.For(isGroup)
	if limit <= 0 {
		return domain.Reservation{}, false
	}
	entry := r.entryLocked(recipientKey, isGroup, true)
	if entry.Count >= limit {
		r.log.Debug("Daily quota exhausted", "recipient", recipientKey, "limit", limit)
		return domain.Reservation{}, false
	}
	entry.Count++
	return domain.Reservation{
		RecipientKey:   recipientKey,
		IsGroup:        isGroup,
		ResetAtEpochMs: entry.ResetAtEpochMs,
	}, true
}

// Refund gives back a unit consumed by Reserve whose send did not go through.
// A reservation taken in a window that has since reset is not refunded.
func (r *RateLimiter) Refund(reservation domain.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.entryLocked(reservation.RecipientKey, reservation.IsGroup, false)
	if entry == nil || entry.ResetAtEpochMs != reservation.ResetAtEpochMs {
		r.log.Debug("Refund skipped, quota window has reset", "recipient", reservation.RecipientKey)
		return
	}
	if entry.Count > 0 {
		entry.Count--
	}
}

func (r *RateLimiter) Remaining(recipientKey string, isGroup bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := r.limits.For(isGroup)
	entry := r.entryLocked(recipientKey, isGroup, false)
	if entry == nil {
		return limit
	}
	return max(0, limit-entry.Count)
}

// Entry returns a copy of the recipient's current entry.
func (r *RateLimiter) Entry(recipientKey string, isGroup bool) (domain.RateLimitEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.entryLocked(recipientKey, isGroup, false)
	if entry == nil {
		return domain.RateLimitEntry{}, false
	}
	return *entry, true
}

// Sweep evicts every entry whose window has passed and returns how many were removed.
func (r *RateLimiter) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	evicted := 0
	for key, entry := range r.entries {
		if entry.Expired(now) {
			delete(r.entries, key)
			evicted++
		}
	}
	return evicted
}

func (r *RateLimiter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// NextReset returns the start of the calendar day following t.
func (r *RateLimiter) NextReset(t time.Time) time.Time {
	local := t.In(r.location)
	y, m, d := local.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, r.location)
}

// entryLocked returns the live entry for key, resetting it when its window has passed.
// With create unset a missing or expired entry yields nil.
func (r *RateLimiter) entryLocked(recipientKey string, isGroup, create bool) *domain.RateLimitEntry {
	now := r.now()
	key := entryKey(recipientKey, isGroup)
	entry, ok := r.entries[key]
	if ok && !entry.Expired(now) {
		return entry
	}
	if !create {
		return nil
	}
	entry = &domain.RateLimitEntry{
		RecipientKey:   recipientKey,
		ResetAtEpochMs: r.NextReset(now).UnixMilli(),
	}
	r.entries[key] = entry
	return entry
}

// Group and private chats can share an identifier on some gateways, so the kind is part of the key.
func entryKey(recipientKey string, isGroup bool) string {
	if isGroup {
		return "group:" + recipientKey
	}
	return "private:" + recipientKey
}
