package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   `ask "<Frage>"`,
		Short: "Stelle dem Bot eine einzelne Frage",
		Long:  "Klassifiziert die Frage und antwortet mit den passenden Statistiken. Der Austausch wird im Verlauf gespeichert.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			response, err := app.Responder.Respond(context.Background(), args[0])
			fmt.Println(response)
			if err != nil {
				// The answer is still valid; only the history write failed.
				fmt.Fprintf(os.Stderr, "Warnung: %v\n", err)
			}
			return nil
		},
	}
}
