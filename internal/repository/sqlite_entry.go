package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwaldhauser/zeitbot/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db *sql.DB
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(db *sql.DB) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.Entry) error {
	query := `INSERT INTO entries (id, date, worked, expected, break_mins, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Date.Format(dateLayout),
		e.Worked,
		e.Expected,
		e.BreakMins,
		e.Category(),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

// ListAll returns all entries ordered by rowid, which preserves
// insertion order regardless of entry dates.
func (r *SQLiteEntryRepo) ListAll(ctx context.Context) ([]domain.Entry, error) {
	query := `SELECT id, date, worked, expected, break_mins, type, created_at
		FROM entries ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var dateStr, createdAtStr string

		if err := rows.Scan(&e.ID, &dateStr, &e.Worked, &e.Expected, &e.BreakMins, &e.Type, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}
		if e.Date, err = time.Parse(dateLayout, dateStr); err != nil {
			return nil, fmt.Errorf("parsing entry date: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing entry created_at: %w", err)
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}
