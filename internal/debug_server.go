package internal

import (
	"chatbot/domain"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type LockLister interface {
	Entries(ctx context.Context, prefix string) ([]domain.LockEntry, error)
}

type StatsProvider func() any

type InspectRow struct {
	Key     string `json:"key"`
	Count   int    `json:"count"`
	Expires string `json:"expires"`
}

type PageData struct {
	Prefix string       `json:"prefix"`
	Items  []InspectRow `json:"items"`
	Stats  any          `json:"stats,omitempty"`
}

// DebugServer exposes the live dedup locks and the pipeline counters over HTTP.
// It is meant for a local port, it has no authentication.
type DebugServer struct {
	log           *slog.Logger
	addr          string
	locks         LockLister
	stats         StatsProvider
	defaultPrefix string
}

func NewDebugServer(log *slog.Logger, port int, locks LockLister, stats StatsProvider, defaultPrefix string) *DebugServer {
	return &DebugServer{
		log:           log,
		addr:          fmt.Sprintf("127.0.0.1:%d", port),
		locks:         locks,
		stats:         stats,
		defaultPrefix: defaultPrefix,
	}
}

func (s *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /inspect", s.inspect)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func (s *DebugServer) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Debug server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("debug server: %w", err)
	}
}

func (s *DebugServer) inspect(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = s.defaultPrefix
	}

	entries, err := s.locks.Entries(r.Context(), prefix)
	if err != nil {
		s.log.Warn("Inspect failed", "prefix", prefix, "err", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	data := PageData{Prefix: prefix, Items: make([]InspectRow, 0, len(entries))}
	for _, entry := range entries {
		data.Items = append(data.Items, DefaultMapper(entry))
	}
	if s.stats != nil {
		data.Stats = s.stats()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Debug("Inspect response not written", "err", err)
	}
}

func DefaultMapper(entry domain.LockEntry) InspectRow {
	return InspectRow{
		Key:     entry.Key,
		Count:   entry.Count,
		Expires: time.UnixMilli(entry.ExpiresAtEpochMs).UTC().Format(time.RFC3339),
	}
}
