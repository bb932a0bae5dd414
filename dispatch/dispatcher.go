package dispatch

import (
	"chatbot/contract"
	"chatbot/domain"
	"chatbot/errors"
	"chatbot/observability"
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/samber/lo"
)

const (
	MsgUnknownCommand   = "Unknown command %q. Send \"help\" to list the available commands."
	MsgPermissionDenied = "You don't have permission to use this command."
	MsgGroupOnly        = "This command can only be used in group chats."
	MsgPrivateOnly      = "This command can only be used in private chats."
	MsgCommandFailed    = "Something went wrong while running this command. Please try again later."
)

// Dispatcher turns one inbound event into a command execution.
// It holds no per-event state: everything is built for the call and dropped afterwards.
type Dispatcher struct {
	log      *slog.Logger
	commands contract.CommandLookup
	admins   contract.AdminLister
	replies  contract.ReplierFactory
	monitor  *observability.PipelineMonitor
	prefix   string
}

type Option func(*Dispatcher)

// WithPrefix only treats texts starting with prefix as commands; the others are ignored.
func WithPrefix(prefix string) Option {
	return func(d *Dispatcher) { d.prefix = strings.TrimSpace(prefix) }
}

func WithMonitor(monitor *observability.PipelineMonitor) Option {
	return func(d *Dispatcher) { d.monitor = monitor }
}

func NewDispatcher(
	log *slog.Logger,
	commands contract.CommandLookup,
	admins contract.AdminLister,
	replies contract.ReplierFactory,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{log: log, commands: commands, admins: admins, replies: replies}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Invocation is a raw text split into a command name and its parameters.
type Invocation struct {
	Name      string
	RawParams string
}

// Parse splits text on whitespace: the first token is the command name, the rest its parameters.
// ok is false for an empty text or, with a prefix configured, a text not starting with it.
func Parse(text, prefix string) (Invocation, bool) {
	text = strings.TrimSpace(text)
	if prefix != "" {
		if !strings.HasPrefix(text, prefix) {
			return Invocation{}, false
		}
		text = strings.TrimSpace(strings.TrimPrefix(text, prefix))
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Invocation{}, false
	}
	return Invocation{
		Name:      domain.NormalizeCommandName(fields[0]),
		RawParams: strings.TrimSpace(strings.TrimPrefix(text, fields[0])),
	}, true
}

// Handle runs the command matched by the event text.
// Denials and unknown commands are outcomes answered to the user, not errors.
// A failing or panicking command is contained here; the returned error only reports
// that the outcome reply itself could not be sent.
func (d *Dispatcher) Handle(ctx context.Context, event domain.InboundEvent) (domain.DispatchOutcome, error) {
	invocation, ok := Parse(event.RawText, d.prefix)
	if !ok {
		return domain.OutcomeIgnored, nil
	}
	log := d.log.With("message_id", event.MessageID, "command", invocation.Name)
	replier := d.replies.NewReplier(event)

	def, found := d.commands.Lookup(invocation.Name)
	if !found {
		log.Debug("Unknown command")
		d.count((*observability.PipelineMonitor).IncrUnknownCommands)
		return domain.OutcomeUnknownCommand, replier.Reply(ctx, fmt.Sprintf(MsgUnknownCommand, invocation.Name))
	}

	isAdmin := d.isAdmin(ctx, event.Sender)
	if def.AdminOnly && !isAdmin {
		log.Info("Permission denied", "sender", event.Sender)
		d.count((*observability.PipelineMonitor).IncrDenied)
		return domain.OutcomePermissionDenied, replier.Reply(ctx, MsgPermissionDenied)
	}

	if !def.Availability.Allows(event.ChatKind()) {
		log.Debug("Command not available in this chat", "availability", def.Availability, "is_group", event.IsGroup)
		d.count((*observability.PipelineMonitor).IncrDenied)
		msg := lo.Ternary(def.Availability == domain.AvailabilityGroup, MsgGroupOnly, MsgPrivateOnly)
		return domain.OutcomeContextMismatch, replier.Reply(ctx, msg)
	}

	cmd := domain.CommandContext{
		RawParams:         invocation.RawParams,
		IsAdmin:           isAdmin,
		AvailableCommands: d.commands.Summaries(),
		RawEvent:          event,
		Reply:             replier,
	}
	d.count((*observability.PipelineMonitor).IncrDispatched)

	if err := execute(ctx, def, cmd); err != nil {
		log.Error("Command failed", "err", err)
		d.count((*observability.PipelineMonitor).IncrCommandFailures)
		if replier.Replied() {
			return domain.OutcomeFailed, nil
		}
		return domain.OutcomeFailed, replier.Reply(ctx, MsgCommandFailed)
	}
	return domain.OutcomeExecuted, nil
}

// isAdmin treats a failing admin lookup as "not an admin".
func (d *Dispatcher) isAdmin(ctx context.Context, identity string) bool {
	if identity == domain.DryRunIdentity {
		return true
	}
	admins, err := d.admins.ListAdminIdentities(ctx)
	if err != nil {
		d.log.Warn("Admin lookup failed", "sender", identity, "err", err)
		return false
	}
	normalized := domain.NormalizeIdentity(identity)
	return lo.ContainsBy(admins, func(admin string) bool {
		return domain.NormalizeIdentity(admin) == normalized
	})
}

func (d *Dispatcher) count(incr func(*observability.PipelineMonitor)) {
	if d.monitor != nil {
		incr(d.monitor)
	}
}

// execute runs the command body, turning a panic into an error.
func execute(ctx context.Context, def domain.CommandDefinition, cmd domain.CommandContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", errors.ErrCommandPanic, r, debug.Stack())
		}
	}()
	return def.Execute(ctx, cmd)
}
