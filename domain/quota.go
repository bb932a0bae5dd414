package domain

import "time"

// RateLimitEntry tracks how many replies a recipient received in the current quota window.
type RateLimitEntry struct {
	RecipientKey   string
	Count          int
	ResetAtEpochMs int64
}

func (e RateLimitEntry) Expired(now time.Time) bool {
	return now.UnixMilli() >= e.ResetAtEpochMs
}

// Reservation is one unit of quota taken by Reserve. It remembers the window it was taken
// from so that a late refund never gives capacity back to a newer window.
type Reservation struct {
	RecipientKey   string
	IsGroup        bool
	ResetAtEpochMs int64
}

// LockEntry is the value stored behind a dedup lock key.
type LockEntry struct {
	Key              string `json:"key"`
	Count            int    `json:"count"`
	ExpiresAtEpochMs int64  `json:"expires_at_epoch_ms"`
}

func (e LockEntry) Expired(now time.Time) bool {
	return now.UnixMilli() >= e.ExpiresAtEpochMs
}
