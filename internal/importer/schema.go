package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for entry import.
type ImportSchema struct {
	Entries []EntryImport `json:"entries"`
}

// EntryImport defines one work entry in the import file.
type EntryImport struct {
	Date      string  `json:"date"`
	Worked    float64 `json:"worked"`
	Expected  float64 `json:"expected"`
	BreakMins int     `json:"break_mins,omitempty"`
	Type      string  `json:"type,omitempty"`
}

// LoadImportSchema reads and parses an entry import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
