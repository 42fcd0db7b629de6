package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/mooncyc/internal/cli"
	"github.com/alexanderramin/mooncyc/internal/config"
	"github.com/alexanderramin/mooncyc/internal/db"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/guidance"
	"github.com/alexanderramin/mooncyc/internal/llm"
	"github.com/alexanderramin/mooncyc/internal/logger"
	"github.com/alexanderramin/mooncyc/internal/repository"
	"github.com/alexanderramin/mooncyc/internal/secrets"
	"github.com/alexanderramin/mooncyc/internal/service"
	"github.com/mattn/go-isatty"
)

const setupHint = "set up your cycle first: mooncyc cycle set --last-period YYYY-MM-DD"

func main() {
	if err := run(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if domain.IsConfigError(err) {
		fmt.Fprintf(w, "Hint: %s\n", setupHint)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closer, err := logger.New(logger.Config{Debug: cfg.Debug, Dir: cfg.LogDir})
	if err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	defer closer.Close()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	cycleRepo := repository.NewSQLiteCycleRepo(database)
	entryRepo := repository.NewSQLiteSymptomLogRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(log)

	llmCfg := llm.LoadConfig()
	llmCfg.APIKey = secrets.ResolveAPIKey(llmCfg.APIKey)
	resolver := newResolver(llmCfg, log)

	app := &cli.App{
		Cycle:    service.NewCycleService(cycleRepo, observer),
		Symptoms: service.NewSymptomService(entryRepo, cycleRepo, observer),
		Tasks:    service.NewTaskService(taskRepo, cfg.Schedule, observer),
		Guidance: service.NewGuidanceService(cycleRepo, entryRepo, resolver, observer),
		Archive:  service.NewArchiveService(cycleRepo, entryRepo, taskRepo, uow, observer),
		LLM:      llmCfg,
		Logger:   log,
		HTTPAddr: cfg.HTTPAddr,
		Now:      time.Now,
	}

	// Detect interactive terminal for forms and the spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// newResolver wires the model-backed provider when AI guidance is enabled.
// A disabled or unusable configuration yields a resolver that always uses
// the pre-written content, so key management commands keep working.
func newResolver(cfg llm.LLMConfig, log *slog.Logger) *guidance.Resolver {
	if !cfg.Enabled {
		return guidance.NewResolver(nil, log)
	}
	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(log)
	}
	client, err := llm.NewClient(cfg, observer)
	if err != nil {
		log.Warn("ai guidance disabled", "error", err)
		return guidance.NewResolver(nil, log)
	}
	return guidance.NewResolver(guidance.NewLLMProvider(client), log)
}
