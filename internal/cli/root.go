package cli

import (
	"github.com/mwaldhauser/zeitbot/internal/bot"
	"github.com/mwaldhauser/zeitbot/internal/repository"
	"github.com/mwaldhauser/zeitbot/internal/stats"
	"github.com/spf13/cobra"
)

// App holds references to everything the CLI commands need.
type App struct {
	Responder *bot.Responder
	Engine    *stats.Engine
	Entries   repository.EntryRepo

	// IsInteractive reports whether stdin is an interactive terminal.
	// On a bare invocation the chat TUI is only started when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "zeitbot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "zeitbot",
		Short: "Zeiterfassungs-Assistent mit Statistik und Chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runChat(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newChatCmd(app),
		newReportCmd(app),
		newHistoryCmd(app),
		newLogCmd(app),
		newImportCmd(app),
	)

	return root
}
