package commands

import (
	"chatbot/contract"
	"chatbot/domain"
	"chatbot/observability"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/process"
)

type StatsSource interface {
	Snapshot() observability.Snapshot
}

type ConnectionInfo interface {
	State() domain.ConnectionState
	Attempts() int
}

// Deps are the collaborators the builtin command bodies need.
type Deps struct {
	Log        *slog.Logger
	Admins     contract.AdminStore
	Stats      StatsSource
	Connection ConnectionInfo
	BotName    string
}

// Builtins is the registration table of the commands shipped with the bot.
func Builtins(deps Deps) Table {
	b := builtins{deps: deps}
	return Table{
		{
			Name:         "help",
			Aliases:      []string{"menu"},
			Description:  "List the commands you can use, or show how to use one",
			UsageExample: "help ping",
			Enabled:      true,
			Availability: domain.AvailabilityBoth,
			Execute:      b.help,
		},
		{
			Name:         "ping",
			Description:  "Check that the bot is alive",
			UsageExample: "ping",
			Enabled:      true,
			Availability: domain.AvailabilityBoth,
			Execute:      b.ping,
		},
		{
			Name:         "lang",
			Description:  "Guess the language of a text",
			UsageExample: "lang ceci est une phrase",
			Enabled:      true,
			Availability: domain.AvailabilityBoth,
			Execute:      b.lang,
		},
		{
			Name:         "status",
			Description:  "Show connection and pipeline statistics",
			UsageExample: "status",
			Enabled:      true,
			AdminOnly:    true,
			Availability: domain.AvailabilityBoth,
			Execute:      b.status,
		},
		{
			Name:         "admins",
			Description:  "List the administrators",
			UsageExample: "admins",
			Enabled:      true,
			AdminOnly:    true,
			Availability: domain.AvailabilityPrivate,
			Execute:      b.admins,
		},
		{
			Name:         "addadmin",
			Description:  "Grant administrator rights to a number",
			UsageExample: "addadmin 33612345678",
			Enabled:      true,
			AdminOnly:    true,
			Availability: domain.AvailabilityPrivate,
			Execute:      b.addAdmin,
		},
		{
			Name:         "deladmin",
			Description:  "Revoke administrator rights of a number",
			UsageExample: "deladmin 33612345678",
			Enabled:      true,
			AdminOnly:    true,
			Availability: domain.AvailabilityPrivate,
			Execute:      b.delAdmin,
		},
	}
}

type builtins struct {
	deps Deps
}

func (b builtins) help(ctx context.Context, cmd domain.CommandContext) error {
	visible := lo.Filter(cmd.AvailableCommands, func(c domain.CommandSummary, _ int) bool {
		return (!c.AdminOnly || cmd.IsAdmin) && c.Availability.Allows(cmd.RawEvent.ChatKind())
	})

	if name := domain.NormalizeCommandName(cmd.RawParams); name != "" {
		c, found := lo.Find(visible, func(c domain.CommandSummary) bool {
			return c.Name == name || lo.Contains(c.Aliases, name)
		})
		if !found {
			return cmd.Reply.Reply(ctx, fmt.Sprintf("No command named %q. Send \"help\" to list commands.", name))
		}
		return cmd.Reply.Reply(ctx, FormatUsage(c))
	}

	var sb strings.Builder
	if b.deps.BotName != "" {
		fmt.Fprintf(&sb, "*%s* commands:\n", b.deps.BotName)
	} else {
		sb.WriteString("Commands:\n")
	}
	for _, c := range visible {
		fmt.Fprintf(&sb, "- %s: %s\n", c.Name, c.Description)
	}
	sb.WriteString("Send \"help <command>\" for details.")
	return cmd.Reply.Reply(ctx, sb.String())
}

// FormatUsage renders the detailed help of one command.
func FormatUsage(c domain.CommandSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s*: %s", c.Name, c.Description)
	if c.UsageExample != "" {
		fmt.Fprintf(&sb, "\nUsage: %s", c.UsageExample)
	}
	if len(c.Aliases) > 0 {
		fmt.Fprintf(&sb, "\nAliases: %s", strings.Join(c.Aliases, ", "))
	}
	if c.Availability != domain.AvailabilityBoth {
		fmt.Fprintf(&sb, "\nOnly in %s chats", c.Availability)
	}
	return sb.String()
}

func (b builtins) ping(ctx context.Context, cmd domain.CommandContext) error {
	return cmd.Reply.Reply(ctx, "pong")
}

func (b builtins) lang(ctx context.Context, cmd domain.CommandContext) error {
	text := strings.TrimSpace(cmd.RawParams)
	if text == "" {
		return cmd.Reply.Reply(ctx, "Usage: lang <text>")
	}
	info := whatlanggo.Detect(text)
	if info.Confidence <= 0 {
		return cmd.Reply.Reply(ctx, "I could not tell which language this is.")
	}
	return cmd.Reply.Reply(ctx, fmt.Sprintf("%s (%s), confidence %.0f%%",
		info.Lang.String(), info.Lang.Iso6391(), info.Confidence*100))
}

func (b builtins) status(ctx context.Context, cmd domain.CommandContext) error {
	var sb strings.Builder
	if b.deps.Connection != nil {
		fmt.Fprintf(&sb, "Connection: %s (reconnect attempts: %d)\n",
			b.deps.Connection.State(), b.deps.Connection.Attempts())
	}
	if b.deps.Stats != nil {
		s := b.deps.Stats.Snapshot()
		fmt.Fprintf(&sb, "Uptime: %s\n", s.Uptime(time.Now()))
		fmt.Fprintf(&sb, "Frames: %d received, %d malformed, %d duplicates\n",
			s.FramesReceived, s.FramesMalformed, s.Duplicates)
		fmt.Fprintf(&sb, "Commands: %d dispatched, %d unknown, %d denied, %d failed\n",
			s.Dispatched, s.UnknownCommands, s.Denied, s.CommandFailures)
		fmt.Fprintf(&sb, "Replies: %d sent, %d rate limited, %d errors\n",
			s.RepliesSent, s.RepliesRateLimited, s.ReplyErrors)
	}
	if rss, cpu, err := selfStats(); err == nil {
		fmt.Fprintf(&sb, "Process: %d MB RSS, %.1f%% CPU", rss/1024/1024, cpu)
	} else {
		b.deps.Log.Warn("Failed to collect process stats", "err", err)
	}
	return cmd.Reply.Reply(ctx, strings.TrimRight(sb.String(), "\n"))
}

func (b builtins) admins(ctx context.Context, cmd domain.CommandContext) error {
	identities, err := b.deps.Admins.ListAdminIdentities(ctx)
	if err != nil {
		return fmt.Errorf("list admins: %w", err)
	}
	if len(identities) == 0 {
		return cmd.Reply.Reply(ctx, "No administrator registered.")
	}
	return cmd.Reply.Reply(ctx, "Administrators:\n- "+strings.Join(identities, "\n- "))
}

func (b builtins) addAdmin(ctx context.Context, cmd domain.CommandContext) error {
	identity := domain.NormalizeIdentity(firstParam(cmd.RawParams))
	if identity == "" {
		return cmd.Reply.Reply(ctx, "Usage: addadmin <number>")
	}
	if err := b.deps.Admins.AddAdmin(ctx, identity); err != nil {
		return fmt.Errorf("add admin %s: %w", identity, err)
	}
	b.deps.Log.Info("Admin added", "identity", identity, "by", cmd.RawEvent.Sender)
	return cmd.Reply.Reply(ctx, fmt.Sprintf("%s is now an administrator.", identity))
}

func (b builtins) delAdmin(ctx context.Context, cmd domain.CommandContext) error {
	identity := domain.NormalizeIdentity(firstParam(cmd.RawParams))
	if identity == "" {
		return cmd.Reply.Reply(ctx, "Usage: deladmin <number>")
	}
	if identity == domain.NormalizeIdentity(cmd.RawEvent.Sender) {
		return cmd.Reply.Reply(ctx, "You cannot revoke your own rights.")
	}
	if err := b.deps.Admins.RemoveAdmin(ctx, identity); err != nil {
		return fmt.Errorf("remove admin %s: %w", identity, err)
	}
	b.deps.Log.Info("Admin removed", "identity", identity, "by", cmd.RawEvent.Sender)
	return cmd.Reply.Reply(ctx, fmt.Sprintf("%s is no longer an administrator.", identity))
}

func firstParam(params string) string {
	fields := strings.Fields(params)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// selfStats retrieves resident memory and CPU usage of the bot process.
func selfStats() (uint64, float64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, 0, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
