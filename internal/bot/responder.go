package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mwaldhauser/zeitbot/internal/domain"
	"github.com/mwaldhauser/zeitbot/internal/repository"
	"github.com/mwaldhauser/zeitbot/internal/stats"
)

// Responder classifies free-text messages, builds formatted answers
// from the stats engine, and keeps the conversation log. The engine is
// injected at construction; the responder never touches the entry log
// itself.
type Responder struct {
	engine   *stats.Engine
	turns    []domain.ConversationTurn
	repo     repository.ConversationRepo
	cfg      Config
	observer Observer
	now      func() time.Time
}

// ResponderOption configures a Responder.
type ResponderOption func(*Responder)

// WithObserver sets the turn observer.
func WithObserver(o Observer) ResponderOption {
	return func(r *Responder) {
		r.observer = o
	}
}

// WithClock overrides the responder's clock for turn timestamps.
func WithClock(now func() time.Time) ResponderOption {
	return func(r *Responder) {
		r.now = now
	}
}

// NewResponder creates a Responder over the given stats engine and
// conversation store. The persisted conversation log is read once; an
// unreadable log degrades to an empty one rather than failing.
func NewResponder(ctx context.Context, engine *stats.Engine, repo repository.ConversationRepo, cfg Config, opts ...ResponderOption) *Responder {
	r := &Responder{
		engine:   engine,
		repo:     repo,
		cfg:      cfg,
		observer: NoopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	turns, err := repo.LoadAll(ctx)
	if err != nil {
		turns = nil
	}
	r.turns = turns

	return r
}

// Respond classifies the message, builds the answer, appends the turn
// to the conversation log, and persists the whole log snapshot. The
// response text is always returned; a non-nil error means the snapshot
// write failed and the new turn is only held in memory.
func (r *Responder) Respond(ctx context.Context, message string) (string, error) {
	started := r.now()
	intent := ClassifyIntent(message)
	response := r.buildResponse(intent)

	r.turns = append(r.turns, domain.ConversationTurn{
		ID:        uuid.New().String(),
		Timestamp: r.now().UTC(),
		User:      message,
		Bot:       response,
		Intent:    intent,
	})

	saveErr := r.repo.ReplaceAll(ctx, r.turns)

	r.observer.OnTurn(TurnEvent{
		Intent:     intent,
		LatencyMs:  time.Since(started).Milliseconds(),
		MessageLen: len(message),
		SaveFailed: saveErr != nil,
	})

	if saveErr != nil {
		return response, fmt.Errorf("saving conversation log: %w", saveErr)
	}
	return response, nil
}

func (r *Responder) buildResponse(intent domain.Intent) string {
	switch intent {
	case domain.IntentWeekly:
		return r.buildWeekly()
	case domain.IntentMonthly:
		return r.buildMonthly()
	case domain.IntentAnalysis:
		return r.buildAnalysis()
	case domain.IntentProductivity:
		return r.buildProductivity()
	case domain.IntentForecast:
		return r.buildForecast()
	case domain.IntentRecommendations:
		return r.buildRecommendations()
	case domain.IntentBreaks:
		return r.buildBreaks()
	case domain.IntentCategories:
		return r.buildCategories()
	default:
		return r.buildGeneral()
	}
}

// History returns the current conversation log. The slice is a
// read-only view; callers must not mutate it.
func (r *Responder) History() []domain.ConversationTurn {
	return r.turns
}

// ClearHistory resets the conversation log and removes the persisted
// snapshot.
func (r *Responder) ClearHistory(ctx context.Context) error {
	if err := r.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clearing conversation log: %w", err)
	}
	r.turns = nil
	return nil
}
