package runtime

import (
	"chatbot/contract"
	"chatbot/domain"
	"chatbot/observability"
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// FrameDecoder turns a raw gateway frame into an event. ok is false for frames with nothing to act on.
type FrameDecoder func(raw []byte) (event domain.InboundEvent, ok bool, err error)

// Ingest is the transport's frame sink: decode, dedup, then dispatch.
// Every frame runs in its own goroutine; frames sharing a message id are
// serialized by the lock, only the first one is dispatched.
type Ingest struct {
	log        *slog.Logger
	decode     FrameDecoder
	locker     contract.Locker
	dispatcher contract.Dispatcher
	monitor    *observability.PipelineMonitor
	lockTTL    time.Duration
	lockLimit  int

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewIngest(
	log *slog.Logger,
	decode FrameDecoder,
	locker contract.Locker,
	dispatcher contract.Dispatcher,
	monitor *observability.PipelineMonitor,
	lockTTL time.Duration,
) *Ingest {
	return &Ingest{
		log:        log,
		decode:     decode,
		locker:     locker,
		dispatcher: dispatcher,
		monitor:    monitor,
		lockTTL:    lockTTL,
		lockLimit:  1,
	}
}

// HandleFrame never blocks on processing. Frames received after Shutdown are dropped.
// In-flight work is detached from ctx: a command runs to completion even when the transport stops.
func (i *Ingest) HandleFrame(ctx context.Context, raw []byte) {
	i.mu.RLock()
	if i.closed {
		i.mu.RUnlock()
		i.log.Debug("Ingest closed, frame dropped")
		return
	}
	i.wg.Add(1)
	i.mu.RUnlock()

	i.count((*observability.PipelineMonitor).IncrFramesReceived)
	go func() {
		defer i.wg.Done()
		i.process(context.WithoutCancel(ctx), raw)
	}()
}

func (i *Ingest) process(ctx context.Context, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			i.log.Error("Frame processing panicked", "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
		}
	}()

	event, ok, err := i.decode(raw)
	if err != nil {
		i.log.Warn("Dropping malformed frame", "err", err)
		i.count((*observability.PipelineMonitor).IncrFramesMalformed)
		return
	}
	if !ok {
		return
	}
	log := i.log.With("message_id", event.MessageID)

	acquired, err := i.locker.Acquire(ctx, event.MessageID, i.lockTTL, i.lockLimit)
	if err != nil {
		log.Error("Dedup lock unavailable, message skipped", "err", err)
		i.count((*observability.PipelineMonitor).IncrLockErrors)
		return
	}
	if !acquired {
		log.Debug("Duplicate message dropped")
		i.count((*observability.PipelineMonitor).IncrDuplicates)
		return
	}

	outcome, err := i.dispatcher.Handle(ctx, event)
	if err != nil {
		log.Warn("Dispatch reply failed", "outcome", outcome, "err", err)
		return
	}
	log.Debug("Message dispatched", "outcome", outcome)
}

func (i *Ingest) count(incr func(*observability.PipelineMonitor)) {
	if i.monitor != nil {
		incr(i.monitor)
	}
}

// Shutdown stops accepting frames and waits for in-flight ones until ctx is done.
func (i *Ingest) Shutdown(ctx context.Context) error {
	i.mu.Lock()
	i.closed = true
	i.mu.Unlock()

	done := make(chan struct{})
	go func() {
		i.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		i.log.Info("Ingest drained")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("ingest shutdown: %w", ctx.Err())
	}
}
