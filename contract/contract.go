//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chatbot/domain"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision, avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Gateway is the send side of the messaging gateway.
// SendReply is only called when Capabilities advertises domain.CapabilityContextualReply.
type Gateway interface {
	Capabilities() domain.Capabilities
	SendMessage(ctx context.Context, to, text string) (string, error)
	SendReply(ctx context.Context, to, messageID, text string) (string, error)
}

type AdminLister interface {
	ListAdminIdentities(ctx context.Context) ([]string, error)
}

type AdminStore interface {
	AdminLister
	AddAdmin(ctx context.Context, identity string) error
	RemoveAdmin(ctx context.Context, identity string) error
}

// NameResolver finds the human readable name used to address a sender in group replies.
type NameResolver interface {
	ResolveName(ctx context.Context, event domain.InboundEvent) (string, error)
}

// LockStore is any key-value store offering an atomic increment of a TTL bounded counter.
// Increment returns the counter value after the increment. The TTL is only applied when
// the key does not exist yet or has expired.
type LockStore interface {
	Increment(ctx context.Context, key string, ttl time.Duration) (int, error)
	Delete(ctx context.Context, key string) error
}

type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration, limit int) (bool, error)
	Release(ctx context.Context, key string) error
}

// Limiter gates outbound replies per recipient. Reserve atomically checks and consumes one
// unit of quota, Refund gives it back when the send failed.
type Limiter interface {
	Reserve(recipientKey string, isGroup bool) (domain.Reservation, bool)
	Refund(reservation domain.Reservation)
}

// Replier is a per-event reply executor. Replied reports whether at least one send went out.
type Replier interface {
	Reply(ctx context.Context, message string) error
	Replied() bool
}

type ReplierFactory interface {
	NewReplier(event domain.InboundEvent) Replier
}

type ReplyFilter interface {
	Censor(text string) string
}

type CommandSource interface {
	Commands() []domain.CommandDefinition
}

type CommandLookup interface {
	Lookup(name string) (domain.CommandDefinition, bool)
	Summaries() []domain.CommandSummary
}

type Dispatcher interface {
	Handle(ctx context.Context, event domain.InboundEvent) (domain.DispatchOutcome, error)
}

// FrameHandler receives every raw frame read from the gateway socket.
type FrameHandler interface {
	HandleFrame(ctx context.Context, raw []byte)
}
