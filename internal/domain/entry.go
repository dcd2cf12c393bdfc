package domain

import "time"

// DefaultEntryType is the category assigned to entries logged without
// an explicit type.
const DefaultEntryType = "work"

// Entry is one logged work period. Entries are immutable once created;
// the log is append-only and ordered by insertion.
type Entry struct {
	ID        string
	Date      time.Time
	Worked    float64
	Expected  float64
	BreakMins int
	Type      string
	CreatedAt time.Time
}

// Category returns the entry's type, falling back to DefaultEntryType
// when none was set.
func (e Entry) Category() string {
	if e.Type == "" {
		return DefaultEntryType
	}
	return e.Type
}
