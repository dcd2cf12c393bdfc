package stats

import (
	"testing"
	"time"

	"github.com/mwaldhauser/zeitbot/internal/domain"
	"github.com/mwaldhauser/zeitbot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Wednesday; its week runs 2024-06-10 to 2024-06-16.
var fixedNow = time.Date(2024, time.June, 12, 14, 30, 0, 0, time.UTC)

func newFixedEngine(entries []domain.Entry) *Engine {
	return NewEngine(entries, WithNow(func() time.Time { return fixedNow }))
}

func TestWeekly_SumsCurrentWeek(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 10), testutil.WithWorked(8), testutil.WithExpected(8)),
		testutil.NewTestEntry(testutil.Day(2024, time.June, 11), testutil.WithWorked(6), testutil.WithExpected(8)),
		// Outside the current week, must be ignored.
		testutil.NewTestEntry(testutil.Day(2024, time.June, 3), testutil.WithWorked(4), testutil.WithExpected(8)),
	}

	s := newFixedEngine(entries).Weekly()

	assert.InDelta(t, 14.0, s.Worked, 1e-9)
	assert.InDelta(t, 16.0, s.Expected, 1e-9)
	assert.InDelta(t, -2.0, s.Diff, 1e-9)
	require.True(t, s.HasPercentage)
	assert.InDelta(t, 87.5, s.Percentage, 1e-9)
	assert.Equal(t, 2, s.Days)
}

func TestWeekly_DiffIdentity(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 10), testutil.WithWorked(7.25), testutil.WithExpected(8)),
		testutil.NewTestEntry(testutil.Day(2024, time.June, 12), testutil.WithWorked(9.5), testutil.WithExpected(7.75)),
	}

	s := newFixedEngine(entries).Weekly()
	assert.InDelta(t, s.Worked-s.Expected, s.Diff, 1e-9)
}

func TestWeekly_ZeroExpectedHasNoPercentage(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 11), testutil.WithWorked(5), testutil.WithExpected(0)),
	}

	s := newFixedEngine(entries).Weekly()

	assert.False(t, s.HasPercentage, "expected == 0 must yield the sentinel, not a ratio")
	assert.Zero(t, s.Percentage)
}

func TestWeekly_EmptyLog(t *testing.T) {
	s := newFixedEngine(nil).Weekly()

	assert.Zero(t, s.Worked)
	assert.Zero(t, s.Expected)
	assert.Zero(t, s.Days)
	assert.False(t, s.HasPercentage)
}

func TestMonthly_FiltersByCalendarMonth(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 1), testutil.WithWorked(8)),
		testutil.NewTestEntry(testutil.Day(2024, time.June, 30), testutil.WithWorked(4)),
		testutil.NewTestEntry(testutil.Day(2024, time.May, 31), testutil.WithWorked(6)),
		testutil.NewTestEntry(testutil.Day(2024, time.July, 1), testutil.WithWorked(6)),
	}

	s := newFixedEngine(entries).Monthly()

	assert.InDelta(t, 12.0, s.Worked, 1e-9)
	assert.Equal(t, 2, s.Days)
}

func TestTrend_EmptyLogReturnsNil(t *testing.T) {
	assert.Nil(t, newFixedEngine(nil).Trend())
}

func TestTrend_AverageAndExtremes(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 3), testutil.WithWorked(4)),
		testutil.NewTestEntry(testutil.Day(2024, time.June, 4), testutil.WithWorked(10)),
		testutil.NewTestEntry(testutil.Day(2024, time.June, 5), testutil.WithWorked(7)),
	}

	tr := newFixedEngine(entries).Trend()
	require.NotNil(t, tr)

	assert.InDelta(t, 21.0, tr.Total, 1e-9)
	assert.InDelta(t, 7.0, tr.Average, 1e-9)
	assert.Equal(t, 3, tr.Days)
	assert.Equal(t, testutil.Day(2024, time.June, 4), tr.BestDay)
	assert.InDelta(t, 10.0, tr.BestHours, 1e-9)
	assert.Equal(t, testutil.Day(2024, time.June, 3), tr.WorstDay)
	assert.InDelta(t, 4.0, tr.WorstHours, 1e-9)
}

func TestTrend_FirstOccurrenceWinsOnTies(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 3), testutil.WithWorked(8)),
		testutil.NewTestEntry(testutil.Day(2024, time.June, 4), testutil.WithWorked(8)),
	}

	tr := newFixedEngine(entries).Trend()
	require.NotNil(t, tr)

	assert.Equal(t, testutil.Day(2024, time.June, 3), tr.BestDay)
	assert.Equal(t, testutil.Day(2024, time.June, 3), tr.WorstDay)
}

func TestTrend_WindowIsLast30InInsertionOrder(t *testing.T) {
	// 31 entries; the first one has the maximum hours but falls out of
	// the trailing-30 window.
	var entries []domain.Entry
	entries = append(entries, testutil.NewTestEntry(testutil.Day(2024, time.May, 1), testutil.WithWorked(12)))
	for i := 0; i < 30; i++ {
		entries = append(entries, testutil.NewTestEntry(testutil.Day(2024, time.May, 2), testutil.WithWorked(5)))
	}

	tr := newFixedEngine(entries).Trend()
	require.NotNil(t, tr)

	assert.Equal(t, 30, tr.Days)
	assert.InDelta(t, 5.0, tr.BestHours, 1e-9, "entry outside the trailing window must not win")
}

func TestBreaks_AverageRoundedToNearestMinute(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 10), testutil.WithBreakMins(10)),
		testutil.NewTestEntry(testutil.Day(2024, time.June, 11), testutil.WithBreakMins(15)),
		// Previous week, ignored.
		testutil.NewTestEntry(testutil.Day(2024, time.June, 5), testutil.WithBreakMins(60)),
	}

	b := newFixedEngine(entries).Breaks()

	assert.Equal(t, 25, b.TotalMinutes)
	assert.Equal(t, 13, b.AverageMinutes, "12.5 rounds to 13")
	assert.Equal(t, 2, b.Days)
}

func TestBreaks_EmptyWeekIsZero(t *testing.T) {
	b := newFixedEngine(nil).Breaks()

	assert.Zero(t, b.TotalMinutes)
	assert.Zero(t, b.AverageMinutes)
	assert.Zero(t, b.Days)
}

func TestForecast_RunRateExtrapolation(t *testing.T) {
	// June has 30 days; fixedNow is the 12th, so 18 days remain.
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 5), testutil.WithWorked(6)),
		// After "today", must not count towards the pace.
		testutil.NewTestEntry(testutil.Day(2024, time.June, 20), testutil.WithWorked(8)),
	}

	f := newFixedEngine(entries).Forecast()

	assert.InDelta(t, 6.0, f.CurrentTotal, 1e-9)
	assert.InDelta(t, 0.5, f.AvgPerDay, 1e-9)
	assert.Equal(t, 18, f.DaysRemaining)
	assert.InDelta(t, 15.0, f.PredictedTotal, 1e-9)
}

func TestForecast_Idempotent(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 5), testutil.WithWorked(6.5)),
	}
	e := newFixedEngine(entries)

	assert.Equal(t, e.Forecast(), e.Forecast())
}

func TestForecast_EmptyLog(t *testing.T) {
	f := newFixedEngine(nil).Forecast()

	assert.Zero(t, f.CurrentTotal)
	assert.Zero(t, f.AvgPerDay)
	assert.Zero(t, f.PredictedTotal)
	assert.Equal(t, 18, f.DaysRemaining)
}

func TestCategories_GroupedInFirstAppearanceOrder(t *testing.T) {
	entries := []domain.Entry{
		testutil.NewTestEntry(testutil.Day(2024, time.June, 3), testutil.WithEntryType("meeting"), testutil.WithWorked(2)),
		testutil.NewTestEntry(testutil.Day(2024, time.June, 4), testutil.WithWorked(8), testutil.WithEntryType("")),
		testutil.NewTestEntry(testutil.Day(2024, time.June, 5), testutil.WithEntryType("meeting"), testutil.WithWorked(3)),
	}

	groups := newFixedEngine(entries).Categories()
	require.Len(t, groups, 2)

	assert.Equal(t, "meeting", groups[0].Type)
	assert.Equal(t, 2, groups[0].Count)
	assert.InDelta(t, 5.0, groups[0].Hours, 1e-9)

	assert.Equal(t, domain.DefaultEntryType, groups[1].Type, "missing type falls back to the work category")
	assert.Equal(t, 1, groups[1].Count)
	assert.InDelta(t, 8.0, groups[1].Hours, 1e-9)
}

func TestCategories_EmptyLog(t *testing.T) {
	assert.Empty(t, newFixedEngine(nil).Categories())
}

func TestRecommendations_RuleMatrix(t *testing.T) {
	tests := []struct {
		name      string
		entries   []domain.Entry
		wantKinds []domain.RecommendationKind
	}{
		{
			name: "negative weekly diff with healthy average",
			entries: []domain.Entry{
				testutil.NewTestEntry(testutil.Day(2024, time.June, 10), testutil.WithWorked(7), testutil.WithExpected(10)),
			},
			wantKinds: []domain.RecommendationKind{domain.RecommendationWarning},
		},
		{
			name: "surplus above two hours",
			entries: []domain.Entry{
				testutil.NewTestEntry(testutil.Day(2024, time.June, 10), testutil.WithWorked(11), testutil.WithExpected(8)),
			},
			wantKinds: []domain.RecommendationKind{domain.RecommendationSuccess},
		},
		{
			name: "balanced week but low average",
			entries: []domain.Entry{
				testutil.NewTestEntry(testutil.Day(2024, time.June, 10), testutil.WithWorked(5), testutil.WithExpected(5)),
			},
			wantKinds: []domain.RecommendationKind{domain.RecommendationInfo},
		},
		{
			name: "deficit and low average fire together",
			entries: []domain.Entry{
				testutil.NewTestEntry(testutil.Day(2024, time.June, 10), testutil.WithWorked(4), testutil.WithExpected(8)),
			},
			wantKinds: []domain.RecommendationKind{domain.RecommendationWarning, domain.RecommendationInfo},
		},
		{
			name:      "empty log yields no recommendations",
			entries:   nil,
			wantKinds: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := newFixedEngine(tt.entries).Recommendations()
			var kinds []domain.RecommendationKind
			for _, r := range recs {
				kinds = append(kinds, r.Kind)
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}
