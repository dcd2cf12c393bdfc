package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mwaldhauser/zeitbot/internal/domain"
)

// Entry options
type EntryOption func(*domain.Entry)

func WithWorked(h float64) EntryOption {
	return func(e *domain.Entry) {
		e.Worked = h
	}
}

func WithExpected(h float64) EntryOption {
	return func(e *domain.Entry) {
		e.Expected = h
	}
}

func WithBreakMins(m int) EntryOption {
	return func(e *domain.Entry) {
		e.BreakMins = m
	}
}

func WithEntryType(t string) EntryOption {
	return func(e *domain.Entry) {
		e.Type = t
	}
}

// NewTestEntry creates an entry for the given date with 8h worked and
// 8h expected unless overridden.
func NewTestEntry(date time.Time, opts ...EntryOption) domain.Entry {
	e := domain.Entry{
		ID:        uuid.New().String(),
		Date:      date,
		Worked:    8,
		Expected:  8,
		BreakMins: 30,
		Type:      domain.DefaultEntryType,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Day returns a date at day granularity in UTC, convenient for fixtures.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Turn options
type TurnOption func(*domain.ConversationTurn)

func WithTurnIntent(i domain.Intent) TurnOption {
	return func(t *domain.ConversationTurn) {
		t.Intent = i
	}
}

func WithTimestamp(ts time.Time) TurnOption {
	return func(t *domain.ConversationTurn) {
		t.Timestamp = ts
	}
}

// NewTestTurn creates a conversation turn with the given messages.
func NewTestTurn(user, bot string, opts ...TurnOption) domain.ConversationTurn {
	t := domain.ConversationTurn{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC().Truncate(time.Second),
		User:      user,
		Bot:       bot,
		Intent:    domain.IntentGeneral,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
