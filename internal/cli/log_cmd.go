package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/mwaldhauser/zeitbot/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// entryInput collects raw string values for a new entry, shared between
// the flag surface and the interactive form.
type entryInput struct {
	Date      string
	Worked    string
	Expected  string
	BreakMins string
	Type      string
}

func newLogCmd(app *App) *cobra.Command {
	var in entryInput

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Erfasse einen Arbeitstag",
		Long:  "Legt einen neuen Eintrag an. Ohne --worked öffnet sich auf einem Terminal ein Formular.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("worked") {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("--worked ist erforderlich, wenn kein Terminal verfügbar ist")
				}
				if err := entryForm(&in).Run(); err != nil {
					return fmt.Errorf("running entry form: %w", err)
				}
			}

			entry, err := in.toEntry()
			if err != nil {
				return err
			}
			if err := app.Entries.Create(context.Background(), &entry); err != nil {
				return err
			}

			fmt.Printf("Eintrag für %s gespeichert (%sh gearbeitet).\n", entry.Date.Format(dateLayout), in.Worked)
			return nil
		},
	}

	addEntryFlags(cmd.Flags(), &in)
	return cmd
}

func addEntryFlags(fs *pflag.FlagSet, in *entryInput) {
	fs.StringVar(&in.Date, "date", time.Now().Format(dateLayout), "Datum (YYYY-MM-DD)")
	fs.StringVar(&in.Worked, "worked", "", "Gearbeitete Stunden")
	fs.StringVar(&in.Expected, "expected", "8", "Erwartete Stunden")
	fs.StringVar(&in.BreakMins, "break", "0", "Pausenminuten")
	fs.StringVar(&in.Type, "type", domain.DefaultEntryType, "Kategorie")
}

// entryForm builds the interactive data-entry form.
func entryForm(in *entryInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Datum (YYYY-MM-DD)").
				Placeholder(time.Now().Format(dateLayout)).
				Value(&in.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Gearbeitete Stunden").
				Placeholder("8").
				Value(&in.Worked).
				Validate(validateHours),
			huh.NewInput().
				Title("Erwartete Stunden").
				Placeholder("8").
				Value(&in.Expected).
				Validate(validateHours),
			huh.NewInput().
				Title("Pausenminuten").
				Placeholder("30").
				Value(&in.BreakMins).
				Validate(validateMinutes),
			huh.NewInput().
				Title("Kategorie").
				Placeholder(domain.DefaultEntryType).
				Value(&in.Type),
		),
	).WithShowHelp(false)
}

func (in entryInput) toEntry() (domain.Entry, error) {
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("ungültiges Datum %q: %w", in.Date, err)
	}
	worked, err := strconv.ParseFloat(in.Worked, 64)
	if err != nil || worked < 0 {
		return domain.Entry{}, fmt.Errorf("ungültige Stundenangabe %q", in.Worked)
	}
	expected, err := strconv.ParseFloat(in.Expected, 64)
	if err != nil || expected < 0 {
		return domain.Entry{}, fmt.Errorf("ungültige Stundenangabe %q", in.Expected)
	}
	breakMins := 0
	if in.BreakMins != "" {
		breakMins, err = strconv.Atoi(in.BreakMins)
		if err != nil || breakMins < 0 {
			return domain.Entry{}, fmt.Errorf("ungültige Pausenminuten %q", in.BreakMins)
		}
	}
	typ := in.Type
	if typ == "" {
		typ = domain.DefaultEntryType
	}

	return domain.Entry{
		ID:        uuid.New().String(),
		Date:      date,
		Worked:    worked,
		Expected:  expected,
		BreakMins: breakMins,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func validateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("Datum muss YYYY-MM-DD sein")
	}
	return nil
}

func validateHours(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return fmt.Errorf("Stunden müssen eine nicht-negative Zahl sein")
	}
	return nil
}

func validateMinutes(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("Minuten müssen eine nicht-negative ganze Zahl sein")
	}
	return nil
}
