package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/rickshaw/internal/cli"
	"github.com/alexanderramin/rickshaw/internal/config"
	"github.com/alexanderramin/rickshaw/internal/db"
	"github.com/alexanderramin/rickshaw/internal/repository"
	"github.com/alexanderramin/rickshaw/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so events only go to an explicit log file.
	observer := service.UseCaseObserver(service.NoopUseCaseObserver{})
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		observer = service.NewLogUseCaseObserver(f)
	}

	// Pinned quotes live only as long as the process.
	database, err := db.OpenMemory()
	if err != nil {
		return fmt.Errorf("opening quote log: %w", err)
	}
	defer database.Close()

	quoteRepo := repository.NewSQLiteQuoteRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Config:   cfg,
		Quotes:   service.NewQuoteService(quoteRepo, uow, cfg.Tariff, observer),
		Observer: observer,
		IsInteractive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}

	return cli.NewRootCmd(app).Execute()
}
