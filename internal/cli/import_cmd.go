package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mwaldhauser/zeitbot/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <datei.json>",
		Short: "Importiere Einträge aus einer JSON-Datei",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}

			if errs := importer.Validate(schema); len(errs) > 0 {
				for _, e := range errs {
					fmt.Fprintln(os.Stderr, e.Error())
				}
				return fmt.Errorf("import aborted: %d validation error(s)", len(errs))
			}

			entries, err := importer.Convert(schema)
			if err != nil {
				return err
			}

			ctx := context.Background()
			for _, e := range entries {
				if err := app.Entries.Create(ctx, &e); err != nil {
					return fmt.Errorf("importing entry for %s: %w", e.Date.Format(dateLayout), err)
				}
			}

			fmt.Printf("%d Einträge importiert.\n", len(entries))
			return nil
		},
	}
}
