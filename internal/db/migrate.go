package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Work entries. Insertion order matters: rowid is the canonical
	// ordering for the trailing trend/category windows.
	`CREATE TABLE IF NOT EXISTS entries (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		worked     REAL NOT NULL DEFAULT 0 CHECK(worked >= 0),
		expected   REAL NOT NULL DEFAULT 0 CHECK(expected >= 0),
		break_mins INTEGER NOT NULL DEFAULT 0 CHECK(break_mins >= 0),
		type       TEXT NOT NULL DEFAULT 'work',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date)`,

	`CREATE TABLE IF NOT EXISTS conversation_turns (
		id        TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		user_msg  TEXT NOT NULL,
		bot_msg   TEXT NOT NULL,
		intent    TEXT NOT NULL
		          CHECK(intent IN ('WEEKLY','MONTHLY','ANALYSIS','PRODUCTIVITY',
		                           'FORECAST','RECOMMENDATIONS','BREAKS','CATEGORIES','GENERAL'))
	)`,
}
