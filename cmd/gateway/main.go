package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"votekick-lab/internal"
	"votekick-lab/moderation"
	"votekick-lab/observability"
	"votekick-lab/repositories"
	"votekick-lab/runtime"
	"votekick-lab/runtime/workers"
	"votekick-lab/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gateway terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the gateway lifecycle, and
// centralizes error reporting so 'defer' statements (like database cleanup)
// always execute before the program exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config validation: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()

	// 3. Platform adapters
	configRepo := repositories.NewServerConfigRepository(db, logger)
	directory := repositories.NewMemberDirectory(logger)
	board := repositories.NewAnnouncementBoard()

	dictionary, err := moderation.LoadDictionary()
	if err != nil {
		return exitRuntime, fmt.Errorf("censor dictionary: %w", err)
	}
	logger.Info("Censor dictionary loaded",
		"languages", dictionary.Languages, "words", len(dictionary.Words))

	filter, err := moderation.NewFilter(dictionary.Words, charReplacement, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("censor automaton: %w", err)
	}

	// 4. Poll engine & services
	metrics := observability.NewPollMetrics()
	registry := runtime.NewRegistry()
	engine := runtime.NewEngine(logger, configRepo, directory, board, board,
		directory, &filter, registry, metrics,
		runtime.Settings{
			Window:         config.PollWindow,
			SafetyMargin:   config.PollSafetyMargin,
			QuorumFraction: config.QuorumFraction,
		})
	moderationSvc := services.NewModerationService(engine, logger)
	summarySvc := services.NewSummaryService(configRepo, configRepo, directory, registry, logger)

	if err := seedDemoServer(config.ServerID, configRepo, directory); err != nil {
		return exitRuntime, fmt.Errorf("demo seed: %w", err)
	}

	// 5. Observability
	internal.StartDebugServer(db, metrics, config.DebugPort, logger)

	supervisor := workers.NewSupervisor(logger)
	go supervisor.
		Add(workers.NewMetricsReporterWorker(metrics, config.MetricInterval, logger)).
		Run(ctx)
	defer supervisor.Stop()

	// 6. Interactive console
	console := newConsole(config.ServerID, moderationSvc, summarySvc, directory, board, registry, logger)
	if err := console.loop(ctx); err != nil {
		return exitRuntime, err
	}

	return exitOK, nil
}
