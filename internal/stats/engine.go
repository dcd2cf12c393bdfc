package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/mwaldhauser/zeitbot/internal/domain"
)

const (
	trendWindowEntries    = 30
	categoryWindowEntries = 60
)

// PeriodStats aggregates worked vs. expected hours over one window.
// Percentage is only meaningful when HasPercentage is true; a window
// whose expected total is zero has no defined completion ratio.
type PeriodStats struct {
	Worked        float64
	Expected      float64
	Diff          float64
	Percentage    float64
	HasPercentage bool
	Days          int
}

// Trend summarizes the trailing entry window: average and total worked
// hours plus the strongest and weakest entries.
type Trend struct {
	Average    float64
	Total      float64
	Days       int
	BestDay    time.Time
	BestHours  float64
	WorstDay   time.Time
	WorstHours float64
}

// BreakAnalysis aggregates break minutes over the current week.
type BreakAnalysis struct {
	TotalMinutes   int
	AverageMinutes int
	Days           int
}

// Forecast is a linear run-rate extrapolation to month end. Values are
// unrounded; rounding is a display concern.
type Forecast struct {
	PredictedTotal float64
	CurrentTotal   float64
	AvgPerDay      float64
	DaysRemaining  int
}

// CategoryStat is the per-type share of the trailing category window.
type CategoryStat struct {
	Type  string
	Count int
	Hours float64
}

// Recommendation is one rule-based suggestion derived from aggregates.
type Recommendation struct {
	Kind    domain.RecommendationKind
	Message string
	Action  string
}

// Engine derives all numeric insight from the entry log. It is a pure
// function of the entries it was constructed with and the injected
// clock; it never mutates the log.
type Engine struct {
	entries []domain.Entry
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithNow overrides the engine's clock. Used by tests and by callers
// that need a fixed "today".
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an Engine over the given entry log. A nil slice is
// valid and yields "no data" aggregates everywhere.
func NewEngine(entries []domain.Entry, opts ...Option) *Engine {
	e := &Engine{
		entries: entries,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Weekly aggregates the current week's entries.
func (e *Engine) Weekly() PeriodStats {
	return e.periodStats(CurrentWeek(e.now()))
}

// Monthly aggregates the current month's entries.
func (e *Engine) Monthly() PeriodStats {
	return e.periodStats(CurrentMonth(e.now()))
}

func (e *Engine) periodStats(w Window) PeriodStats {
	var s PeriodStats
	for _, entry := range e.entries {
		if !w.Contains(entry.Date) {
			continue
		}
		s.Worked += entry.Worked
		s.Expected += entry.Expected
		s.Days++
	}
	s.Diff = s.Worked - s.Expected
	if s.Expected > 0 {
		s.Percentage = s.Worked / s.Expected * 100
		s.HasPercentage = true
	}
	return s
}

// Trend computes the trailing-30-entry productivity summary. The window
// is taken in insertion order, not date order; if the log is not
// date-sorted this is not a true trailing-30-day window. Returns nil
// when the log is empty.
func (e *Engine) Trend() *Trend {
	window := tail(e.entries, trendWindowEntries)
	if len(window) == 0 {
		return nil
	}

	t := &Trend{Days: len(window)}
	best, worst := window[0], window[0]
	for _, entry := range window {
		t.Total += entry.Worked
		if entry.Worked > best.Worked {
			best = entry
		}
		if entry.Worked < worst.Worked {
			worst = entry
		}
	}
	t.Average = t.Total / float64(len(window))
	t.BestDay, t.BestHours = best.Date, best.Worked
	t.WorstDay, t.WorstHours = worst.Date, worst.Worked
	return t
}

// Breaks aggregates break minutes over the current week. The average is
// rounded to the nearest minute and zero when the week has no entries.
func (e *Engine) Breaks() BreakAnalysis {
	week := CurrentWeek(e.now())

	var b BreakAnalysis
	for _, entry := range e.entries {
		if !week.Contains(entry.Date) {
			continue
		}
		b.TotalMinutes += entry.BreakMins
		b.Days++
	}
	if b.Days > 0 {
		b.AverageMinutes = int(math.Round(float64(b.TotalMinutes) / float64(b.Days)))
	}
	return b
}

// Forecast extrapolates the month-end total from the pace so far:
// predicted = workedSoFar + remainingDays * (workedSoFar / daysPassed).
func (e *Engine) Forecast() Forecast {
	now := e.now()
	month := CurrentMonth(now)
	daysInMonth := month.End.Day()
	daysPassed := now.Day()

	soFar := Window{Start: month.Start, End: now}
	var workedSoFar float64
	for _, entry := range e.entries {
		if soFar.Contains(entry.Date) {
			workedSoFar += entry.Worked
		}
	}

	var avgPerDay float64
	if daysPassed > 0 {
		avgPerDay = workedSoFar / float64(daysPassed)
	}
	remaining := daysInMonth - daysPassed

	return Forecast{
		PredictedTotal: workedSoFar + float64(remaining)*avgPerDay,
		CurrentTotal:   workedSoFar,
		AvgPerDay:      avgPerDay,
		DaysRemaining:  remaining,
	}
}

// Categories groups the trailing-60-entry window by type. Groups are
// ordered by first appearance so output is deterministic. The window is
// taken in insertion order, like Trend.
func (e *Engine) Categories() []CategoryStat {
	window := tail(e.entries, categoryWindowEntries)

	index := make(map[string]int, 4)
	var groups []CategoryStat
	for _, entry := range window {
		cat := entry.Category()
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, CategoryStat{Type: cat})
		}
		groups[i].Count++
		groups[i].Hours += entry.Worked
	}
	return groups
}

// Recommendations evaluates the rule list in fixed order. Rules are not
// mutually exclusive: every matching rule contributes one entry. An
// empty result means everything is on plan.
func (e *Engine) Recommendations() []Recommendation {
	weekly := e.Weekly()
	trend := e.Trend()

	var recs []Recommendation

	if weekly.Diff < 0 {
		recs = append(recs, Recommendation{
			Kind:    domain.RecommendationWarning,
			Message: warningMessage(math.Abs(weekly.Diff)),
			Action:  "Versuche morgen etwas länger zu arbeiten!",
		})
	}

	if weekly.Diff > 2 {
		recs = append(recs, Recommendation{
			Kind:    domain.RecommendationSuccess,
			Message: successMessage(weekly.Diff),
			Action:  "Gönne dir eine Pause - du hast dir das verdient!",
		})
	}

	if trend != nil && trend.Average < 6 {
		recs = append(recs, Recommendation{
			Kind:    domain.RecommendationInfo,
			Message: infoMessage(trend.Average),
			Action:  "Versuche, konstanter zu arbeiten!",
		})
	}

	return recs
}

func warningMessage(deficit float64) string {
	return fmt.Sprintf("Du hast diese Woche %.2fh weniger gearbeitet als erwartet.", deficit)
}

func successMessage(surplus float64) string {
	return fmt.Sprintf("Großartig! Du hast diese Woche %.2fh mehr gearbeitet.", surplus)
}

func infoMessage(avg float64) string {
	return fmt.Sprintf("Dein Durchschnitt liegt bei %.2fh/Tag.", avg)
}

// tail returns the last n elements of entries in order.
func tail(entries []domain.Entry, n int) []domain.Entry {
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
