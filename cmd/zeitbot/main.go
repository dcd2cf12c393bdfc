package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mwaldhauser/zeitbot/internal/bot"
	"github.com/mwaldhauser/zeitbot/internal/cli"
	"github.com/mwaldhauser/zeitbot/internal/db"
	"github.com/mwaldhauser/zeitbot/internal/repository"
	"github.com/mwaldhauser/zeitbot/internal/stats"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.zeitbot/zeitbot.db
	dbPath := os.Getenv("ZEITBOT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".zeitbot", "zeitbot.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	entryRepo := repository.NewSQLiteEntryRepo(database)
	convRepo := repository.NewSQLiteConversationRepo(database)

	ctx := context.Background()

	// The stats engine reads the entry log once at startup. An
	// unreadable log degrades to empty aggregates instead of failing.
	entries, err := entryRepo.ListAll(ctx)
	if err != nil {
		entries = nil
	}
	engine := stats.NewEngine(entries)

	cfg := bot.LoadConfig()
	var observer bot.Observer = bot.NoopObserver{}
	if cfg.LogTurns {
		observer = bot.NewLogObserver(os.Stderr)
	}

	responder := bot.NewResponder(ctx, engine, convRepo, cfg, bot.WithObserver(observer))

	app := &cli.App{
		Responder: responder,
		Engine:    engine,
		Entries:   entryRepo,
	}

	// Detect interactive terminal for the chat-by-default entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
