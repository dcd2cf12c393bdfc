package cli

import (
	"fmt"

	"github.com/mwaldhauser/zeitbot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Zeige das Wochen- und Monats-Dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := formatter.FormatReport(
				app.Engine.Weekly(),
				app.Engine.Monthly(),
				app.Engine.Forecast(),
				app.Engine.Breaks(),
				app.Engine.Recommendations(),
			)
			fmt.Print(out)
			return nil
		},
	}
}
