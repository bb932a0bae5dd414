package internal

import (
	"chatbot/domain"
	"chatbot/errors"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubLocks struct {
	entries []domain.LockEntry
	err     error
	prefix  string
}

func (s *stubLocks) Entries(_ context.Context, prefix string) ([]domain.LockEntry, error) {
	s.prefix = prefix
	return s.entries, s.err
}

func TestDebugServer_Inspect_Default_Prefix(t *testing.T) {
	req := require.New(t)
	expires := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	locks := &stubLocks{entries: []domain.LockEntry{
		{Key: "lock:ABC", Count: 2, ExpiresAtEpochMs: expires.UnixMilli()},
	}}
	server := NewDebugServer(slog.Default(), 0, locks, func() any { return map[string]int{"frames": 3} }, "lock:")

	// Given a request without prefix
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inspect", nil))

	// Then the default prefix is listed along with the stats
	req.Equal(http.StatusOK, rec.Code)
	req.Equal("lock:", locks.prefix)
	var page struct {
		Prefix string         `json:"prefix"`
		Items  []InspectRow   `json:"items"`
		Stats  map[string]int `json:"stats"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	req.Equal("lock:", page.Prefix)
	req.Equal([]InspectRow{{Key: "lock:ABC", Count: 2, Expires: "2026-03-01T10:00:00Z"}}, page.Items)
	req.Equal(3, page.Stats["frames"])
}

func TestDebugServer_Inspect_Custom_Prefix(t *testing.T) {
	req := require.New(t)
	locks := &stubLocks{}
	server := NewDebugServer(slog.Default(), 0, locks, nil, "lock:")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inspect?prefix=lock:XYZ", nil))

	req.Equal(http.StatusOK, rec.Code)
	req.Equal("lock:XYZ", locks.prefix)
	req.JSONEq(`{"prefix":"lock:XYZ","items":[]}`, rec.Body.String())
}

func TestDebugServer_Inspect_Store_Failure(t *testing.T) {
	req := require.New(t)
	locks := &stubLocks{err: errors.ErrLockStoreUnavailable}
	server := NewDebugServer(slog.Default(), 0, locks, nil, "lock:")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inspect", nil))

	req.Equal(http.StatusServiceUnavailable, rec.Code)
	req.Contains(rec.Body.String(), "lock store unavailable")
}

func TestDebugServer_Healthz(t *testing.T) {
	req := require.New(t)
	server := NewDebugServer(slog.Default(), 0, &stubLocks{}, nil, "lock:")

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	req.Equal(http.StatusOK, rec.Code)
}
