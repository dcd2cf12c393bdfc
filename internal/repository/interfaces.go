package repository

import (
	"context"

	"github.com/mwaldhauser/zeitbot/internal/domain"
)

// EntryRepo owns the work-entry log. Entries are immutable: the log
// only grows, and ListAll returns it in insertion order.
type EntryRepo interface {
	Create(ctx context.Context, e *domain.Entry) error
	ListAll(ctx context.Context) ([]domain.Entry, error)
}

// ConversationRepo persists the conversation log with whole-snapshot
// semantics: every save replaces the entire stored log, last writer
// wins. There is no per-turn mutation.
type ConversationRepo interface {
	LoadAll(ctx context.Context) ([]domain.ConversationTurn, error)
	ReplaceAll(ctx context.Context, turns []domain.ConversationTurn) error
	DeleteAll(ctx context.Context) error
}
