package transport

import (
	"chatbot/contract"
	"chatbot/domain"
	"chatbot/observability"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	DefaultKeepaliveInterval = 10 * time.Second
	writeWait                = 5 * time.Second
	handshakeTimeout         = 15 * time.Second
	maxFrameSize             = 1 << 20 // 1MB
)

// URLBuilder returns the gateway URL, auth query parameters included.
// It is called before every dial so that short-lived tokens are refreshed on reconnect.
type URLBuilder func() (string, error)

// Timer is the part of *time.Timer the reconnect scheduler needs.
type Timer interface {
	Stop() bool
}

type pingFrame struct {
	Type string `json:"type"`
	TS   int64  `json:"ts"`
}

// Transport owns the gateway websocket.
// Each connection lives in its own goroutine (dial, read loop, close) and every callback
// of that goroutine carries the generation it was started with. All state transitions
// happen under mu, and a callback whose generation is stale is ignored, so a late close
// of an old socket can never tear down or reschedule a newer one.
type Transport struct {
	log       *slog.Logger
	url       URLBuilder
	handler   contract.FrameHandler
	dialer    *websocket.Dialer
	backoff   Backoff
	keepalive time.Duration
	appPing   bool
	monitor   *observability.PipelineMonitor

	afterFunc func(d time.Duration, f func()) Timer
	ping      func(conn *websocket.Conn, now time.Time) error

	mu             sync.Mutex
	ctx            context.Context
	state          domain.ConnectionState
	conn           *websocket.Conn
	attempts       int
	generation     uint64
	reconnectTimer Timer
	stopKeepalive  chan struct{}
	writeMu        sync.Mutex
}

type Option func(*Transport)

func WithBackoff(backoff Backoff) Option {
	return func(t *Transport) { t.backoff = backoff }
}

// WithKeepalive sets the ping interval. With appLevel the ping is a {"type":"ping","ts":...}
// text frame instead of a websocket ping control frame.
func WithKeepalive(interval time.Duration, appLevel bool) Option {
	return func(t *Transport) {
		t.keepalive = interval
		t.appPing = appLevel
	}
}

func WithMonitor(monitor *observability.PipelineMonitor) Option {
	return func(t *Transport) { t.monitor = monitor }
}

func WithDialer(dialer *websocket.Dialer) Option {
	return func(t *Transport) { t.dialer = dialer }
}

func NewTransport(log *slog.Logger, url URLBuilder, handler contract.FrameHandler, opts ...Option) *Transport {
	t := &Transport{
		log:       log,
		url:       url,
		handler:   handler,
		dialer:    &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		backoff:   DefaultBackoff(),
		keepalive: DefaultKeepaliveInterval,
		state:     domain.StateDisconnected,
		afterFunc: func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) },
	}
	t.ping = t.sendPing
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run connects and keeps the connection alive until ctx is cancelled.
// Connection failures are never returned: they are retried with backoff.
func (t *Transport) Run(ctx context.Context) error {
	t.mu.Lock()
	t.ctx = ctx
	t.mu.Unlock()

	t.connect()
	<-ctx.Done()
	t.teardown()
	return nil
}

func (t *Transport) State() domain.ConnectionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Attempts is the number of reconnects scheduled since the last successful open.
func (t *Transport) Attempts() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attempts
}

// connect clears pending timers and starts a new connection generation.
func (t *Transport) connect() {
	t.mu.Lock()
	if t.ctx == nil || t.ctx.Err() != nil {
		t.mu.Unlock()
		return
	}
	t.stopTimersLocked()
	t.generation++
	gen := t.generation
	t.state = domain.StateConnecting
	ctx := t.ctx
	t.mu.Unlock()

	go t.dial(ctx, gen)
}

func (t *Transport) dial(ctx context.Context, gen uint64) {
	connID := uuid.NewString()
	log := t.log.With("connection_id", connID)

	url, err := t.url()
	if err != nil {
		log.Error("Unable to build gateway url", "err", err)
		t.onError(gen, err)
		return
	}

	log.Debug("Dialing gateway")
	conn, resp, err := t.dialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		log.Warn("Gateway dial failed", "err", err)
		t.onError(gen, err)
		return
	}

	if !t.onOpen(gen, conn) {
		_ = conn.Close()
		return
	}
	log.Info("Gateway connected")
	t.readLoop(ctx, gen, conn, log)
}

func (t *Transport) onOpen(gen uint64, conn *websocket.Conn) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation || t.ctx.Err() != nil {
		return false
	}
	t.conn = conn
	t.state = domain.StateConnected
	t.attempts = 0
	if t.monitor != nil {
		t.monitor.IncrConnects()
	}

	conn.SetReadLimit(maxFrameSize)
	if !t.appPing && t.keepalive > 0 {
		pongWait := 3 * t.keepalive
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
	}
	if t.keepalive > 0 {
		stop := make(chan struct{})
		t.stopKeepalive = stop
		go t.keepaliveLoop(conn, stop)
	}
	return true
}

// readLoop hands every frame to the handler. The handler owns any further concurrency.
func (t *Transport) readLoop(ctx context.Context, gen uint64, conn *websocket.Conn, log *slog.Logger) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("Gateway connection lost", "err", err)
			} else {
				log.Info("Gateway connection closed", "err", err)
			}
			t.onClose(gen)
			return
		}
		t.handler.HandleFrame(ctx, data)
	}
}

// onError only reconnects when the socket never opened: an open socket always ends in onClose.
func (t *Transport) onError(gen uint64, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation || t.ctx.Err() != nil || t.state == domain.StateConnected {
		return
	}
	t.log.Debug("Transport error while not connected", "err", err)
	t.state = domain.StateDisconnected
	t.scheduleReconnectLocked()
}

func (t *Transport) onClose(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		return
	}
	t.stopTimersLocked()
	if t.conn != nil {
		_ = t.conn.Close()
		t.conn = nil
		if t.monitor != nil {
			t.monitor.IncrDisconnects()
		}
	}
	t.state = domain.StateDisconnected
	if t.ctx.Err() != nil {
		return
	}
	t.scheduleReconnectLocked()
}

func (t *Transport) scheduleReconnectLocked() {
	if t.reconnectTimer != nil {
		t.reconnectTimer.Stop()
	}
	t.attempts++
	delay := t.backoff.Delay(t.attempts)
	t.log.Info("Reconnect scheduled", "attempt", t.attempts, "delay", delay)
	t.reconnectTimer = t.afterFunc(delay, t.connect)
}

func (t *Transport) stopTimersLocked() {
	if t.reconnectTimer != nil {
		t.reconnectTimer.Stop()
		t.reconnectTimer = nil
	}
	if t.stopKeepalive != nil {
		close(t.stopKeepalive)
		t.stopKeepalive = nil
	}
}

// keepaliveLoop closes the socket on the first failed ping: the read loop then fails and
// the close path reconnects.
func (t *Transport) keepaliveLoop(conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(t.keepalive)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			if err := t.ping(conn, now); err != nil {
				t.log.Warn("Keepalive ping failed, closing connection", "err", err)
				_ = conn.Close()
				return
			}
		}
	}
}

func (t *Transport) sendPing(conn *websocket.Conn, now time.Time) error {
	if !t.appPing {
		return conn.WriteControl(websocket.PingMessage, nil, now.Add(writeWait))
	}
	payload, err := json.Marshal(pingFrame{Type: "ping", TS: now.UnixMilli()})
	if err != nil {
		return err
	}
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if err := conn.SetWriteDeadline(now.Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func (t *Transport) teardown() {
	t.mu.Lock()
	t.generation++
	t.stopTimersLocked()
	t.state = domain.StateClosing
	conn := t.conn
	t.conn = nil
	t.mu.Unlock()

	if conn != nil {
		t.writeMu.Lock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "shutdown"),
			time.Now().Add(writeWait))
		t.writeMu.Unlock()
		_ = conn.Close()
	}

	t.mu.Lock()
	t.state = domain.StateDisconnected
	t.mu.Unlock()
	t.log.Info("Transport stopped")
}
