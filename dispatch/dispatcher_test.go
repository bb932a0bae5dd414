package dispatch

import (
	"chatbot/commands"
	"chatbot/contract"
	"chatbot/domain"
	"chatbot/errors"
	"chatbot/mocks"
	"chatbot/observability"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type replyRecorder struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (r *replyRecorder) Reply(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *replyRecorder) Replied() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages) > 0
}

type recorderFactory struct {
	recorder *replyRecorder
}

func (f recorderFactory) NewReplier(domain.InboundEvent) contract.Replier { return f.recorder }

type probe struct {
	calls    int
	received domain.CommandContext
}

func (p *probe) command(name string, adminOnly bool, availability domain.Availability) domain.CommandDefinition {
	return domain.CommandDefinition{
		Name:         name,
		Description:  name + " command",
		Enabled:      true,
		AdminOnly:    adminOnly,
		Availability: availability,
		Execute: func(ctx context.Context, cmd domain.CommandContext) error {
			p.calls++
			p.received = cmd
			return cmd.Reply.Reply(ctx, name+" done")
		},
	}
}

type fixture struct {
	dispatcher *Dispatcher
	admins     *mocks.MockAdminLister
	replies    *replyRecorder
	monitor    *observability.PipelineMonitor
}

func newFixture(t *testing.T, table commands.Table, opts ...Option) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := commands.NewRegistry(slog.Default())
	_, err := registry.Load(table)
	require.NoError(t, err)

	admins := mocks.NewMockAdminLister(ctrl)
	replies := &replyRecorder{}
	monitor := observability.NewPipelineMonitor(slog.Default())
	opts = append(opts, WithMonitor(monitor))
	return fixture{
		dispatcher: NewDispatcher(slog.Default(), registry, admins, recorderFactory{recorder: replies}, opts...),
		admins:     admins,
		replies:    replies,
		monitor:    monitor,
	}
}

func privateEvent(sender, text string) domain.InboundEvent {
	return domain.InboundEvent{
		ID:        "evt-1",
		MessageID: "msg-1",
		Sender:    sender,
		Number:    sender,
		RawText:   text,
	}
}

func groupEvent(sender, text string) domain.InboundEvent {
	return domain.InboundEvent{
		ID:        "evt-2",
		MessageID: "msg-2",
		Sender:    sender,
		Number:    "120363@g.us",
		IsGroup:   true,
		RawText:   text,
	}
}

func TestParse(t *testing.T) {
	req := require.New(t)

	invocation, ok := Parse("  HELP   ping now ", "")
	req.True(ok)
	req.Equal("help", invocation.Name)
	req.Equal("ping now", invocation.RawParams)

	_, ok = Parse("   ", "")
	req.False(ok)

	_, ok = Parse("help", "!")
	req.False(ok)

	invocation, ok = Parse("! Ping", "!")
	req.True(ok)
	req.Equal("ping", invocation.Name)
	req.Empty(invocation.RawParams)
}

func TestDispatcher_Help_From_Non_Admin_In_Private_Sends_One_Reply(t *testing.T) {
	req := require.New(t)
	p := &probe{}
	f := newFixture(t, commands.Table{p.command("help", false, domain.AvailabilityBoth)})

	// Given a non admin sender
	f.admins.EXPECT().ListAdminIdentities(gomock.Any()).Return([]string{"33600000000"}, nil)

	// When "help" is received in a private chat
	outcome, err := f.dispatcher.Handle(context.Background(), privateEvent("33611111111@c.us", "help"))

	// Then the command runs and exactly one reply is sent
	req.NoError(err)
	req.Equal(domain.OutcomeExecuted, outcome)
	req.Equal(1, p.calls)
	req.Equal([]string{"help done"}, f.replies.messages)
	req.False(p.received.IsAdmin)
	req.Len(p.received.AvailableCommands, 1)
	req.Equal(uint64(1), f.monitor.Snapshot().Dispatched)
}

func TestDispatcher_AddAdmin_From_Non_Admin_Is_Denied(t *testing.T) {
	req := require.New(t)
	p := &probe{}
	f := newFixture(t, commands.Table{p.command("addadmin", true, domain.AvailabilityPrivate)})

	f.admins.EXPECT().ListAdminIdentities(gomock.Any()).Return([]string{"33600000000"}, nil)

	outcome, err := f.dispatcher.Handle(context.Background(), privateEvent("33611111111@c.us", "addadmin 33622222222"))

	req.NoError(err)
	req.Equal(domain.OutcomePermissionDenied, outcome)
	req.Zero(p.calls)
	req.Equal([]string{MsgPermissionDenied}, f.replies.messages)
}

func TestDispatcher_Admin_Reaches_Admin_Only_Command(t *testing.T) {
	req := require.New(t)
	p := &probe{}
	f := newFixture(t, commands.Table{p.command("addadmin", true, domain.AvailabilityPrivate)})

	// Given the configured admin is stored with a leading "+"
	f.admins.EXPECT().ListAdminIdentities(gomock.Any()).Return([]string{"+33600000000"}, nil)

	outcome, err := f.dispatcher.Handle(context.Background(), privateEvent("33600000000@c.us", "AddAdmin 33622222222"))

	req.NoError(err)
	req.Equal(domain.OutcomeExecuted, outcome)
	req.Equal(1, p.calls)
	req.True(p.received.IsAdmin)
	req.Equal("33622222222", p.received.RawParams)
}

func TestDispatcher_Sentinel_Identity_Is_Admin_Without_Lookup(t *testing.T) {
	req := require.New(t)
	p := &probe{}
	f := newFixture(t, commands.Table{p.command("status", true, domain.AvailabilityBoth)})

	// No admin lookup is expected: the mock fails the test if one happens
	outcome, err := f.dispatcher.Handle(context.Background(), privateEvent(domain.DryRunIdentity, "status"))

	req.NoError(err)
	req.Equal(domain.OutcomeExecuted, outcome)
	req.True(p.received.IsAdmin)
}

func TestDispatcher_Admin_Lookup_Failure_Means_Non_Admin(t *testing.T) {
	req := require.New(t)
	p := &probe{}
	f := newFixture(t, commands.Table{p.command("status", true, domain.AvailabilityBoth)})

	f.admins.EXPECT().ListAdminIdentities(gomock.Any()).Return(nil, fmt.Errorf("badger closed"))

	outcome, err := f.dispatcher.Handle(context.Background(), privateEvent("33600000000", "status"))

	req.NoError(err)
	req.Equal(domain.OutcomePermissionDenied, outcome)
	req.Zero(p.calls)
}

func TestDispatcher_Context_Gating(t *testing.T) {
	testCases := []struct {
		name     string
		command  domain.Availability
		event    domain.InboundEvent
		outcome  domain.DispatchOutcome
		expected string
	}{
		{
			name:     "private only command from a group",
			command:  domain.AvailabilityPrivate,
			event:    groupEvent("33611111111@c.us", "cmd"),
			outcome:  domain.OutcomeContextMismatch,
			expected: MsgPrivateOnly,
		},
		{
			name:     "group only command from a private chat",
			command:  domain.AvailabilityGroup,
			event:    privateEvent("33611111111@c.us", "cmd"),
			outcome:  domain.OutcomeContextMismatch,
			expected: MsgGroupOnly,
		},
		{
			name:     "group only command from a group",
			command:  domain.AvailabilityGroup,
			event:    groupEvent("33611111111@c.us", "cmd"),
			outcome:  domain.OutcomeExecuted,
			expected: "cmd done",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			p := &probe{}
			f := newFixture(t, commands.Table{p.command("cmd", false, tc.command)})
			f.admins.EXPECT().ListAdminIdentities(gomock.Any()).Return(nil, nil)

			outcome, err := f.dispatcher.Handle(context.Background(), tc.event)

			req.NoError(err)
			req.Equal(tc.outcome, outcome)
			req.Equal([]string{tc.expected}, f.replies.messages)
			req.Equal(tc.outcome == domain.OutcomeExecuted, p.calls == 1)
		})
	}
}

func TestDispatcher_Unknown_Command(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, commands.Table{})

	outcome, err := f.dispatcher.Handle(context.Background(), privateEvent("33611111111", "dance now"))

	req.NoError(err)
	req.Equal(domain.OutcomeUnknownCommand, outcome)
	req.Equal([]string{fmt.Sprintf(MsgUnknownCommand, "dance")}, f.replies.messages)
	req.Equal(uint64(1), f.monitor.Snapshot().UnknownCommands)
}

func TestDispatcher_Prefix_Ignores_Plain_Chat(t *testing.T) {
	req := require.New(t)
	p := &probe{}
	f := newFixture(t, commands.Table{p.command("ping", false, domain.AvailabilityBoth)}, WithPrefix("!"))

	outcome, err := f.dispatcher.Handle(context.Background(), groupEvent("33611111111", "ping everyone"))
	req.NoError(err)
	req.Equal(domain.OutcomeIgnored, outcome)
	req.Empty(f.replies.messages)

	f.admins.EXPECT().ListAdminIdentities(gomock.Any()).Return(nil, nil)
	outcome, err = f.dispatcher.Handle(context.Background(), groupEvent("33611111111", "!ping"))
	req.NoError(err)
	req.Equal(domain.OutcomeExecuted, outcome)
}

func TestDispatcher_Command_Failure_Sends_Generic_Reply(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, commands.Table{{
		Name:    "broken",
		Enabled: true,
		Execute: func(context.Context, domain.CommandContext) error {
			return fmt.Errorf("song index unreachable")
		},
	}})
	f.admins.EXPECT().ListAdminIdentities(gomock.Any()).Return(nil, nil)

	outcome, err := f.dispatcher.Handle(context.Background(), privateEvent("33611111111", "broken"))

	req.NoError(err)
	req.Equal(domain.OutcomeFailed, outcome)
	req.Equal([]string{MsgCommandFailed}, f.replies.messages)
	req.Equal(uint64(1), f.monitor.Snapshot().CommandFailures)
}

func TestDispatcher_Command_Failure_After_Reply_Sends_Nothing_More(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, commands.Table{{
		Name:    "partial",
		Enabled: true,
		Execute: func(ctx context.Context, cmd domain.CommandContext) error {
			if err := cmd.Reply.Reply(ctx, "searching..."); err != nil {
				return err
			}
			return fmt.Errorf("search failed")
		},
	}})
	f.admins.EXPECT().ListAdminIdentities(gomock.Any()).Return(nil, nil)

	outcome, err := f.dispatcher.Handle(context.Background(), privateEvent("33611111111", "partial"))

	req.NoError(err)
	req.Equal(domain.OutcomeFailed, outcome)
	req.Equal([]string{"searching..."}, f.replies.messages)
}

func TestDispatcher_Recovers_From_Command_Panic(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, commands.Table{{
		Name:    "panicky",
		Enabled: true,
		Execute: func(context.Context, domain.CommandContext) error {
			var m map[string]int
			m["boom"]++
			return nil
		},
	}})
	f.admins.EXPECT().ListAdminIdentities(gomock.Any()).Return(nil, nil)

	req.NotPanics(func() {
		outcome, err := f.dispatcher.Handle(context.Background(), privateEvent("33611111111", "panicky"))
		req.NoError(err)
		req.Equal(domain.OutcomeFailed, outcome)
	})
	req.Equal([]string{MsgCommandFailed}, f.replies.messages)
}

func TestExecute_Wraps_Panic(t *testing.T) {
	req := require.New(t)
	err := execute(context.Background(), domain.CommandDefinition{
		Execute: func(context.Context, domain.CommandContext) error { panic("kaboom") },
	}, domain.CommandContext{})
	req.ErrorIs(err, errors.ErrCommandPanic)
	req.Contains(err.Error(), "kaboom")
}

func TestDispatcher_Reply_Error_Is_Returned(t *testing.T) {
	req := require.New(t)
	f := newFixture(t, commands.Table{})
	f.replies.err = fmt.Errorf("gateway down")

	outcome, err := f.dispatcher.Handle(context.Background(), privateEvent("33611111111", "nope"))

	req.Error(err)
	req.Equal(domain.OutcomeUnknownCommand, outcome)
}
