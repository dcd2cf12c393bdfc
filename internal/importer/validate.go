package importer

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ValidationError describes one problem found in an import file.
type ValidationError struct {
	Index int
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("entry %d: %s: %s", e.Index, e.Field, e.Msg)
}

// Validate checks every entry in the schema and returns all problems
// found. An empty result means the schema is importable.
func Validate(schema *ImportSchema) []ValidationError {
	var errs []ValidationError

	if len(schema.Entries) == 0 {
		errs = append(errs, ValidationError{Index: -1, Field: "entries", Msg: "import file contains no entries"})
		return errs
	}

	for i, e := range schema.Entries {
		if e.Date == "" {
			errs = append(errs, ValidationError{i, "date", "required"})
		} else if _, err := time.Parse(dateLayout, e.Date); err != nil {
			errs = append(errs, ValidationError{i, "date", fmt.Sprintf("must be YYYY-MM-DD, got %q", e.Date)})
		}
		if e.Worked < 0 {
			errs = append(errs, ValidationError{i, "worked", "must be non-negative"})
		}
		if e.Expected < 0 {
			errs = append(errs, ValidationError{i, "expected", "must be non-negative"})
		}
		if e.BreakMins < 0 {
			errs = append(errs, ValidationError{i, "break_mins", "must be non-negative"})
		}
	}

	return errs
}
