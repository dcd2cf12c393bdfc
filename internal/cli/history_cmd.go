package cli

import (
	"context"
	"fmt"

	"github.com/mwaldhauser/zeitbot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Zeige oder lösche den Gesprächsverlauf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear {
				if err := app.Responder.ClearHistory(context.Background()); err != nil {
					return err
				}
				fmt.Println("Verlauf gelöscht.")
				return nil
			}
			fmt.Print(formatter.FormatHistory(app.Responder.History()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Verlauf löschen statt anzeigen")
	return cmd
}
