package reply

import (
	"chatbot/contract"
	"chatbot/domain"
	"chatbot/observability"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Factory builds one Executor per inbound event.
type Factory struct {
	log     *slog.Logger
	gateway contract.Gateway
	limiter contract.Limiter
	names   contract.NameResolver
	filter  contract.ReplyFilter
	monitor *observability.PipelineMonitor
}

type Option func(*Factory)

// WithFilter rewrites every outbound text before it is sent.
func WithFilter(filter contract.ReplyFilter) Option {
	return func(f *Factory) { f.filter = filter }
}

func WithMonitor(monitor *observability.PipelineMonitor) Option {
	return func(f *Factory) { f.monitor = monitor }
}

func NewFactory(
	log *slog.Logger,
	gateway contract.Gateway,
	limiter contract.Limiter,
	names contract.NameResolver,
	opts ...Option,
) *Factory {
	f := &Factory{log: log, gateway: gateway, limiter: limiter, names: names}
	for _, opt := range opts {
		opt(f)
	}
	if f.names == nil {
		f.names = DisplayNameResolver{}
	}
	return f
}

func (f *Factory) NewReplier(event domain.InboundEvent) contract.Replier {
	return &Executor{factory: f, event: event}
}

// Executor binds an inbound event to the gateway send capability under the recipient quota.
type Executor struct {
	factory *Factory
	event   domain.InboundEvent
	replied atomic.Bool
}

// Reply sends exactly one message, or none when the recipient quota is exhausted.
// A rate limited reply is dropped silently and reported as a success.
// Quota is only consumed by sends that went through.
func (e *Executor) Reply(ctx context.Context, message string) error {
	f := e.factory
	recipient := e.event.RecipientKey()

	reservation, ok := f.limiter.Reserve(recipient, e.event.IsGroup)
	if !ok {
		f.log.Info("Reply dropped, daily quota reached", "recipient", recipient, "message_id", e.event.MessageID)
		if f.monitor != nil {
			f.monitor.IncrRepliesRateLimited()
		}
		return nil
	}

	text := message
	if f.filter != nil {
		text = f.filter.Censor(text)
	}
	if e.event.IsGroup {
		text = fmt.Sprintf("%s, %s", e.senderName(ctx), text)
	}

	var err error
	if f.gateway.Capabilities().Has(domain.CapabilityContextualReply) && e.event.MessageID != "" {
		_, err = f.gateway.SendReply(ctx, recipient, e.event.MessageID, text)
	} else {
		_, err = f.gateway.SendMessage(ctx, recipient, text)
	}
	if err != nil {
		f.limiter.Refund(reservation)
		if f.monitor != nil {
			f.monitor.IncrReplyErrors()
		}
		return fmt.Errorf("send reply to %s: %w", recipient, err)
	}

	e.replied.Store(true)
	if f.monitor != nil {
		f.monitor.IncrRepliesSent()
	}
	return nil
}

func (e *Executor) Replied() bool {
	return e.replied.Load()
}

// senderName never fails: a lookup error falls back to what the event carries.
func (e *Executor) senderName(ctx context.Context) string {
	name, err := e.factory.names.ResolveName(ctx, e.event)
	if err != nil {
		e.factory.log.Warn("Failed to resolve sender name", "sender", e.event.Sender, "err", err)
	}
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fallbackName(e.event)
}

// DisplayNameResolver uses the name the gateway attached to the event.
type DisplayNameResolver struct{}

func (DisplayNameResolver) ResolveName(_ context.Context, event domain.InboundEvent) (string, error) {
	return fallbackName(event), nil
}

func fallbackName(event domain.InboundEvent) string {
	if name := strings.TrimSpace(event.DisplayName); name != "" {
		return name
	}
	return domain.NormalizeIdentity(event.Sender)
}
