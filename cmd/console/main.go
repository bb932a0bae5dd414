package main

import (
	"chatbot/auth"
	"chatbot/commands"
	"chatbot/dedup"
	"chatbot/dispatch"
	"chatbot/domain"
	"chatbot/observability"
	"chatbot/ratelimit"
	"chatbot/reply"
	"chatbot/repositories"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const usage = `usage: console <command> [flags]

commands:
  commands                 list the registered commands
  send [flags] <text...>   dry-run a message through the dispatcher, replies are printed
  locks                    list the live dedup locks of BADGER_FILEPATH
  admins                   list the administrators of BADGER_FILEPATH
  token                    print a gateway token signed with GATEWAY_TOKEN_SECRET
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return nil
	}
	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	switch args[0] {
	case "commands":
		return withSandbox(log, config, out, func(s sandbox) error {
			renderCommands(out, s.registry.Summaries())
			return nil
		})
	case "send":
		return withSandbox(log, config, out, func(s sandbox) error {
			return s.send(ctx, out, args[1:])
		})
	case "locks":
		return withDatabase(config, func(db *badger.DB) error {
			return renderLocks(ctx, out, repositories.NewBadgerLockStore(db, log, time.Now))
		})
	case "admins":
		return withDatabase(config, func(db *badger.DB) error {
			return renderAdmins(ctx, out, repositories.NewAdminRepository(db, log))
		})
	case "token":
		token, err := auth.GenerateGatewayToken([]byte(config.GatewayTokenSecret), config.GatewaySession,
			config.GatewayTokenTTL, time.Now())
		if err != nil {
			return err
		}
		claims, err := auth.ValidateGatewayToken([]byte(config.GatewayTokenSecret), token)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\nsession=%s expires=%s\n", token, claims.Session, claims.ExpiresAt.Time.Format(time.RFC3339))
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// sandbox is the dispatch pipeline on an in-memory database and a printing gateway.
type sandbox struct {
	registry   *commands.Registry
	dispatcher *dispatch.Dispatcher
	gateway    *consoleGateway
}

type offlineConnection struct{}

func (offlineConnection) State() domain.ConnectionState { return domain.StateDisconnected }
func (offlineConnection) Attempts() int                 { return 0 }

func withSandbox(log *slog.Logger, config Config, out io.Writer, fn func(s sandbox) error) error {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("in-memory database: %w", err)
	}
	defer db.Close()

	admins := repositories.NewAdminRepository(db, log)
	monitor := observability.NewPipelineMonitor(log)
	gateway := newConsoleGateway(out, config.Colours)
	limiter := ratelimit.NewRateLimiter(log, ratelimit.Limits{
		Group:   config.GroupDailyLimit,
		Private: config.PrivateDailyLimit,
	})
	replies := reply.NewFactory(log, gateway, limiter, reply.DisplayNameResolver{}, reply.WithMonitor(monitor))

	registry := commands.NewRegistry(log)
	if _, err := registry.Load(commands.Builtins(commands.Deps{
		Log:        log,
		Admins:     admins,
		Stats:      monitor,
		Connection: offlineConnection{},
		BotName:    config.BotName,
	})); err != nil {
		return err
	}
	dispatcher := dispatch.NewDispatcher(log, registry, admins, replies,
		dispatch.WithPrefix(config.CommandPrefix), dispatch.WithMonitor(monitor))

	return fn(sandbox{registry: registry, dispatcher: dispatcher, gateway: gateway})
}

func (s sandbox) send(ctx context.Context, out io.Writer, args []string) error {
	flags := flag.NewFlagSet("send", flag.ContinueOnError)
	flags.SetOutput(out)
	from := flags.String("from", domain.DryRunIdentity, "sender identity, the dry-run identity is an admin")
	name := flags.String("name", "console", "sender display name")
	group := flags.String("group", "", "group chat id, the message is private when empty")
	if err := flags.Parse(args); err != nil {
		return err
	}
	text := strings.Join(flags.Args(), " ")

	event := domain.InboundEvent{
		ID:          uuid.NewString(),
		MessageID:   uuid.NewString(),
		Sender:      *from,
		Number:      lo.Ternary(*group != "", *group, *from),
		DisplayName: *name,
		IsGroup:     *group != "",
		RawText:     text,
	}
	outcome, err := s.dispatcher.Handle(ctx, event)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "outcome=%s replies=%d\n", outcome, s.gateway.Sent())
	return nil
}

// withDatabase opens the bot database read-only, so it can be inspected while the bot runs.
func withDatabase(config Config, fn func(db *badger.DB) error) error {
	if config.BadgerFilepath == "" {
		return fmt.Errorf("BADGER_FILEPATH is required")
	}
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		return fmt.Errorf("opening %s: %w", config.BadgerFilepath, err)
	}
	defer db.Close()
	return fn(db)
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderCommands(out io.Writer, summaries []domain.CommandSummary) {
	table := newTable(out, []string{"Name", "Aliases", "Availability", "Admin", "Description", "Usage"})
	for _, c := range summaries {
		table.Append([]string{
			c.Name,
			strings.Join(c.Aliases, ","),
			string(c.Availability),
			lo.Ternary(c.AdminOnly, "yes", "no"),
			c.Description,
			c.UsageExample,
		})
	}
	table.Render()
}

func renderLocks(ctx context.Context, out io.Writer, store repositories.BadgerLockStore) error {
	entries, err := store.Entries(ctx, dedup.KeyPrefix)
	if err != nil {
		return err
	}
	table := newTable(out, []string{"Key", "Count", "Expires"})
	for _, entry := range entries {
		table.Append([]string{
			entry.Key,
			fmt.Sprint(entry.Count),
			time.UnixMilli(entry.ExpiresAtEpochMs).Format("15:04:05"),
		})
	}
	table.Render()
	return nil
}

func renderAdmins(ctx context.Context, out io.Writer, repository repositories.AdminRepository) error {
	records, err := repository.Records(ctx)
	if err != nil {
		return err
	}
	table := newTable(out, []string{"Identity", "Added by", "Added at"})
	for _, record := range records {
		table.Append([]string{
			record.Identity,
			lo.Ternary(record.AddedBy != "", record.AddedBy, "command"),
			record.AddedAt.Format(time.RFC3339),
		})
	}
	table.Render()
	return nil
}
