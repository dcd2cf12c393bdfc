package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mwaldhauser/zeitbot/internal/domain"
)

// SQLiteConversationRepo implements ConversationRepo using a SQLite
// database. Saves replace the whole stored log in one transaction so a
// reader never observes a partially written snapshot.
type SQLiteConversationRepo struct {
	db *sql.DB
}

// NewSQLiteConversationRepo creates a new SQLiteConversationRepo.
func NewSQLiteConversationRepo(db *sql.DB) *SQLiteConversationRepo {
	return &SQLiteConversationRepo{db: db}
}

func (r *SQLiteConversationRepo) LoadAll(ctx context.Context) ([]domain.ConversationTurn, error) {
	query := `SELECT id, timestamp, user_msg, bot_msg, intent
		FROM conversation_turns ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading conversation turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.ConversationTurn
	for rows.Next() {
		var t domain.ConversationTurn
		var tsStr, intentStr string

		if err := rows.Scan(&t.ID, &tsStr, &t.User, &t.Bot, &intentStr); err != nil {
			return nil, fmt.Errorf("scanning conversation turn: %w", err)
		}
		if t.Timestamp, err = time.Parse(time.RFC3339, tsStr); err != nil {
			return nil, fmt.Errorf("parsing turn timestamp: %w", err)
		}
		t.Intent = domain.Intent(intentStr)

		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversation turns: %w", err)
	}
	return turns, nil
}

func (r *SQLiteConversationRepo) ReplaceAll(ctx context.Context, turns []domain.ConversationTurn) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting snapshot transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM conversation_turns`); err != nil {
		return fmt.Errorf("clearing conversation turns: %w", err)
	}

	insert := `INSERT INTO conversation_turns (id, timestamp, user_msg, bot_msg, intent)
		VALUES (?, ?, ?, ?, ?)`
	for _, t := range turns {
		if _, err := tx.ExecContext(ctx, insert,
			t.ID,
			t.Timestamp.Format(time.RFC3339),
			t.User,
			t.Bot,
			string(t.Intent),
		); err != nil {
			return fmt.Errorf("inserting conversation turn: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing conversation snapshot: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteConversationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM conversation_turns`); err != nil {
		return fmt.Errorf("deleting conversation turns: %w", err)
	}
	return nil
}
