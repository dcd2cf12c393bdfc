package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Starte den interaktiven Chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app)
		},
	}
}

func runChat(app *App) error {
	p := tea.NewProgram(newChatModel(app))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chat: %w", err)
	}
	return nil
}
