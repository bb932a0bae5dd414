package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

// Snapshot aggregates the pipeline counters for the status command and the periodic log line.
type Snapshot struct {
	StartedAt          time.Time `json:"started_at"`
	FramesReceived     uint64    `json:"frames_received"`
	FramesMalformed    uint64    `json:"frames_malformed"`
	Duplicates         uint64    `json:"duplicates"`
	LockErrors         uint64    `json:"lock_errors"`
	Dispatched         uint64    `json:"dispatched"`
	UnknownCommands    uint64    `json:"unknown_commands"`
	Denied             uint64    `json:"denied"`
	CommandFailures    uint64    `json:"command_failures"`
	RepliesSent        uint64    `json:"replies_sent"`
	RepliesRateLimited uint64    `json:"replies_rate_limited"`
	ReplyErrors        uint64    `json:"reply_errors"`
	Connects           uint64    `json:"connects"`
	Disconnects        uint64    `json:"disconnects"`
	AllocMemMb         uint64    `json:"alloc_mem_mb"`
	NumGoroutine       int       `json:"num_goroutine"`
}

func (s Snapshot) Uptime(now time.Time) time.Duration {
	return now.Sub(s.StartedAt).Truncate(time.Second)
}

// PipelineMonitor counts what happens to frames between the socket and the replies.
// Counters are updated lock-free from any goroutine.
type PipelineMonitor struct {
	log       *slog.Logger
	startedAt time.Time

	framesReceived     atomic.Uint64
	framesMalformed    atomic.Uint64
	duplicates         atomic.Uint64
	lockErrors         atomic.Uint64
	dispatched         atomic.Uint64
	unknownCommands    atomic.Uint64
	denied             atomic.Uint64
	commandFailures    atomic.Uint64
	repliesSent        atomic.Uint64
	repliesRateLimited atomic.Uint64
	replyErrors        atomic.Uint64
	connects           atomic.Uint64
	disconnects        atomic.Uint64
}

func NewPipelineMonitor(log *slog.Logger) *PipelineMonitor {
	return &PipelineMonitor{log: log, startedAt: time.Now()}
}

func (m *PipelineMonitor) IncrFramesReceived()     { m.framesReceived.Add(1) }
func (m *PipelineMonitor) IncrFramesMalformed()    { m.framesMalformed.Add(1) }
func (m *PipelineMonitor) IncrDuplicates()         { m.duplicates.Add(1) }
func (m *PipelineMonitor) IncrLockErrors()         { m.lockErrors.Add(1) }
func (m *PipelineMonitor) IncrDispatched()         { m.dispatched.Add(1) }
func (m *PipelineMonitor) IncrUnknownCommands()    { m.unknownCommands.Add(1) }
func (m *PipelineMonitor) IncrDenied()             { m.denied.Add(1) }
func (m *PipelineMonitor) IncrCommandFailures()    { m.commandFailures.Add(1) }
func (m *PipelineMonitor) IncrRepliesSent()        { m.repliesSent.Add(1) }
func (m *PipelineMonitor) IncrRepliesRateLimited() { m.repliesRateLimited.Add(1) }
func (m *PipelineMonitor) IncrReplyErrors()        { m.replyErrors.Add(1) }
func (m *PipelineMonitor) IncrConnects()           { m.connects.Add(1) }
func (m *PipelineMonitor) IncrDisconnects()        { m.disconnects.Add(1) }

func (m *PipelineMonitor) Snapshot() Snapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return Snapshot{
		StartedAt:          m.startedAt,
		FramesReceived:     m.framesReceived.Load(),
		FramesMalformed:    m.framesMalformed.Load(),
		Duplicates:         m.duplicates.Load(),
		LockErrors:         m.lockErrors.Load(),
		Dispatched:         m.dispatched.Load(),
		UnknownCommands:    m.unknownCommands.Load(),
		Denied:             m.denied.Load(),
		CommandFailures:    m.commandFailures.Load(),
		RepliesSent:        m.repliesSent.Load(),
		RepliesRateLimited: m.repliesRateLimited.Load(),
		ReplyErrors:        m.replyErrors.Load(),
		Connects:           m.connects.Load(),
		Disconnects:        m.disconnects.Load(),
		AllocMemMb:         mem.Alloc / 1024 / 1024,
		NumGoroutine:       runtime.NumGoroutine(),
	}
}

// Reporter logs a snapshot on every interval.
type Reporter struct {
	monitor  *PipelineMonitor
	interval time.Duration
}

func NewReporter(monitor *PipelineMonitor, interval time.Duration) *Reporter {
	return &Reporter{monitor: monitor, interval: interval}
}

func (r *Reporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s := r.monitor.Snapshot()
			r.monitor.log.Info("Pipeline stats",
				"frames", s.FramesReceived,
				"duplicates", s.Duplicates,
				"dispatched", s.Dispatched,
				"replies", s.RepliesSent,
				"rate_limited", s.RepliesRateLimited,
				"failures", s.CommandFailures,
				"mem_mb", s.AllocMemMb,
			)
		}
	}
}
