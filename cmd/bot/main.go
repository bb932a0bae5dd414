package main

import (
	"chatbot/commands"
	"chatbot/contract"
	"chatbot/dedup"
	"chatbot/dispatch"
	"chatbot/gateway"
	"chatbot/internal"
	"chatbot/moderation"
	"chatbot/observability"
	"chatbot/ratelimit"
	"chatbot/reply"
	"chatbot/repositories"
	"chatbot/runtime"
	"chatbot/runtime/workers"
	"chatbot/transport"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the pipeline transport -> ingest -> dedup -> dispatch -> reply and blocks until a signal.
// Configuration errors are returned before anything connects.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB): dedup locks and admins
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	admins := repositories.NewAdminRepository(db, log)
	if err := admins.Seed(ctx, config.AdminList()); err != nil {
		return fmt.Errorf("seeding admins: %w", err)
	}
	lockStore, lockWorkers := newLockStore(log, db, config.DedupStore)
	lock := dedup.NewLock(log, lockStore)

	// 3. Outbound side: quota, censor, gateway
	monitor := observability.NewPipelineMonitor(log)
	limiter := ratelimit.NewRateLimiter(log, ratelimit.Limits{
		Group:   config.GroupDailyLimit,
		Private: config.PrivateDailyLimit,
	})
	moderator, err := newModerator(log, config)
	if err != nil {
		return err
	}
	gatewayClient := gateway.NewClient(log, nil, config.GatewayAPIURL, config.GatewaySession,
		config.GatewayAPIKey, config.GatewayContextualReply)
	replies := reply.NewFactory(log, gatewayClient, limiter, reply.DisplayNameResolver{},
		reply.WithFilter(moderator), reply.WithMonitor(monitor))

	// 4. Inbound side: registry, dispatcher, ingest, transport
	registry := commands.NewRegistry(log)
	dispatcher := dispatch.NewDispatcher(log, registry, admins, replies,
		dispatch.WithPrefix(config.CommandPrefix), dispatch.WithMonitor(monitor))
	ingest := runtime.NewIngest(log, gateway.DecodeFrame, lock, dispatcher, monitor, config.DedupTTL)
	tr := transport.NewTransport(log,
		func() (string, error) { return config.GatewayURL(time.Now()) },
		ingest,
		transport.WithBackoff(transport.Backoff{
			BaseDelay: config.ReconnectBaseDelay,
			MaxDelay:  config.ReconnectMaxDelay,
			Jitter:    config.ReconnectJitter,
		}),
		transport.WithKeepalive(config.KeepaliveInterval, config.AppLevelPing),
		transport.WithMonitor(monitor),
	)

	loaded, err := registry.Load(commands.Builtins(commands.Deps{
		Log:        log,
		Admins:     admins,
		Stats:      monitor,
		Connection: tr,
		BotName:    config.BotName,
	}))
	if err != nil {
		log.Error("Some commands failed to load", "err", err)
	}
	log.Info("Commands loaded", "count", len(loaded), "prefix", config.CommandPrefix)

	// 5. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		tr,
		ratelimit.NewSweeper(log, limiter, config.RateLimitSweepInterval),
		workers.NewBadgerGCWorker(log, db, config.BadgerGCInterval),
		observability.NewReporter(monitor, config.StatsInterval),
	)
	sup.Add(lockWorkers...)
	if config.DebugPort > 0 {
		sup.Add(internal.NewDebugServer(log, config.DebugPort, lockStore,
			func() any { return monitor.Snapshot() }, dedup.KeyPrefix))
	}

	log.Info("Starting chatbot", "session", config.GatewaySession, "at", time.Now().UTC())
	sup.Run(ctx)

	// 6. Drain in-flight commands before closing the database
	log.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := ingest.Shutdown(shutdownCtx); err != nil {
		log.Warn("In-flight commands did not finish in time", "err", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}

// listableLockStore is a dedup store the debug server can list.
type listableLockStore interface {
	contract.LockStore
	internal.LockLister
}

// newLockStore picks the dedup backend. The memory store forgets every lock on restart
// and needs its own sweep worker.
func newLockStore(log *slog.Logger, db *badger.DB, kind string) (listableLockStore, []contract.Worker) {
	if kind == "memory" {
		store := dedup.NewMemoryStore(time.Now)
		log.Info("Dedup locks kept in memory")
		return store, []contract.Worker{store}
	}
	return repositories.NewBadgerLockStore(db, log, time.Now), nil
}

func newModerator(log *slog.Logger, config internal.Config) (*moderation.Moderator, error) {
	words := config.CensoredWordList()
	if config.CensoredWordsDir != "" {
		dictionary, err := moderation.LoadDictionary(os.DirFS(config.CensoredWordsDir), ".")
		if err != nil {
			return nil, fmt.Errorf("loading censored words from %s: %w", config.CensoredWordsDir, err)
		}
		log.Info("Censored dictionaries loaded", "languages", dictionary.Languages, "words", len(dictionary.Words))
		words = append(words, dictionary.Words...)
	}
	char, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return nil, err
	}
	return moderation.NewModerator(words, char, log)
}
