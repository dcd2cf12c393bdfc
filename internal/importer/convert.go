package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mwaldhauser/zeitbot/internal/domain"
)

// Convert turns a validated schema into domain entries, assigning IDs
// and creation timestamps. Entries keep the file's order so the import
// preserves insertion order in the log.
func Convert(schema *ImportSchema) ([]domain.Entry, error) {
	now := time.Now().UTC()

	entries := make([]domain.Entry, 0, len(schema.Entries))
	for i, e := range schema.Entries {
		date, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("entry %d: parsing date: %w", i, err)
		}
		typ := e.Type
		if typ == "" {
			typ = domain.DefaultEntryType
		}
		entries = append(entries, domain.Entry{
			ID:        uuid.New().String(),
			Date:      date,
			Worked:    e.Worked,
			Expected:  e.Expected,
			BreakMins: e.BreakMins,
			Type:      typ,
			CreatedAt: now,
		})
	}
	return entries, nil
}
