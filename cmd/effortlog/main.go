package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/effortlog/internal/cli"
	"github.com/alexanderramin/effortlog/internal/config"
	"github.com/alexanderramin/effortlog/internal/db"
	"github.com/alexanderramin/effortlog/internal/repository"
	"github.com/alexanderramin/effortlog/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configuredTargets, err := cfg.Settings.TargetTable()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	recordRepo := repository.NewSQLiteSessionRecordRepo(database)
	targetRepo := repository.NewSQLiteYearlyTargetRepo(database)
	runRepo := repository.NewSQLiteReportRunRepo(database)

	// Wire unit of work for transactional imports
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel)
	}

	app := &cli.App{
		Import:   service.NewImportService(recordRepo, uow, observer),
		Targets:  service.NewTargetService(targetRepo, configuredTargets),
		Reports:  service.NewReportService(recordRepo, targetRepo, runRepo, cfg.Settings, observer),
		Settings: cfg.Settings,
	}

	// Detect interactive terminal for the report picker and import spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
