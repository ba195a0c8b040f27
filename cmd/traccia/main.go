package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/matteobrandi/traccia/internal/cli"
	"github.com/matteobrandi/traccia/internal/config"
	"github.com/matteobrandi/traccia/internal/db"
	"github.com/matteobrandi/traccia/internal/domain"
	"github.com/matteobrandi/traccia/internal/ingest"
	"github.com/matteobrandi/traccia/internal/llm"
	"github.com/matteobrandi/traccia/internal/logging"
	"github.com/matteobrandi/traccia/internal/notify"
	"github.com/matteobrandi/traccia/internal/repository"
	"github.com/matteobrandi/traccia/internal/service"
	"github.com/matteobrandi/traccia/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env is optional; it mainly carries TRACCIA_LLM_* settings
	// during development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	verbose, quiet := verbosityFlags()
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = filepath.Join(config.ConfigDir(), "logs", "traccia.log")
	}
	logger := logging.Init(logging.Options{
		Verbose: verbose || cfg.Logging.Level == "debug",
		Quiet:   quiet,
		File:    logFile,
	})

	database, err := db.OpenDB(config.DBPath(cfg))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	awardRepo := repository.NewSQLiteGoalAwardRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	notifier := notify.Multi{
		notify.ConsoleNotifier{Out: os.Stdout},
		notify.NewLogNotifier(logger),
	}

	goalSvc := service.NewGoalService(projectRepo, taskRepo, awardRepo, goalLadder(cfg), notifier)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, taskRepo, uow, projectDefaults(cfg), notifier, goalSvc),
		Tasks:    service.NewTaskService(uow, notifier, goalSvc),
		Goals:    goalSvc,
		Stats:    service.NewStatsService(projectRepo, taskRepo),
		Drafts:   service.NewDraftService(draftSource(logger), uow),
		Log:      logger,
		RunTUI:   tui.Run,
	}

	return cli.NewRootCmd(app).Execute()
}

// verbosityFlags pre-scans os.Args for the global verbosity switches so
// the logger exists before cobra parses anything.
func verbosityFlags() (verbose, quiet bool) {
	fs := pflag.NewFlagSet("verbosity", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.BoolVarP(&verbose, "verbose", "v", false, "")
	fs.BoolVarP(&quiet, "quiet", "q", false, "")
	fs.Usage = func() {}
	_ = fs.Parse(os.Args[1:])
	return verbose, quiet
}

func projectDefaults(cfg config.Config) service.Defaults {
	d := service.Defaults{Budget: cfg.Projects.DefaultBudget}
	for _, st := range cfg.Projects.StarterTasks {
		d.StarterTasks = append(d.StarterTasks, service.StarterTask{Name: st.Name, Hours: st.Hours})
	}
	return d
}

func goalLadder(cfg config.Config) []domain.Goal {
	if len(cfg.Goals.Ladder) == 0 {
		return nil // NewGoalService falls back to the built-in ladder
	}
	ladder := make([]domain.Goal, 0, len(cfg.Goals.Ladder))
	for i, g := range cfg.Goals.Ladder {
		ladder = append(ladder, domain.Goal{
			ID:      g.ID,
			Name:    g.Name,
			Target:  g.Target,
			Ordinal: i + 1,
			Reward:  g.Reward,
		})
	}
	return ladder
}

// draftSource picks the LLM-backed source when one is configured,
// otherwise the offline stub.
func draftSource(logger zerolog.Logger) ingest.DraftSource {
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		return ingest.NewOllamaSource(llm.NewOllamaClient(llmCfg, logger))
	}
	return ingest.NewStubSource()
}
