package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrentWeek_StartsMonday(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"wednesday", day(2024, time.June, 12), day(2024, time.June, 10), day(2024, time.June, 16)},
		{"monday", day(2024, time.June, 10), day(2024, time.June, 10), day(2024, time.June, 16)},
		{"sunday is last day of the week", day(2024, time.June, 16), day(2024, time.June, 10), day(2024, time.June, 16)},
		{"week spanning month boundary", day(2024, time.July, 1), day(2024, time.July, 1), day(2024, time.July, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := CurrentWeek(tt.now)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestCurrentMonth_UsesActualDayCount(t *testing.T) {
	w := CurrentMonth(day(2024, time.February, 15))
	assert.Equal(t, day(2024, time.February, 1), w.Start)
	assert.Equal(t, day(2024, time.February, 29), w.End, "2024 is a leap year")

	w = CurrentMonth(day(2023, time.February, 1))
	assert.Equal(t, day(2023, time.February, 28), w.End)

	w = CurrentMonth(day(2024, time.June, 30))
	assert.Equal(t, day(2024, time.June, 30), w.End)
}

func TestWindow_ContainsInclusiveBounds(t *testing.T) {
	w := Window{Start: day(2024, time.June, 10), End: day(2024, time.June, 16)}

	assert.True(t, w.Contains(day(2024, time.June, 10)))
	assert.True(t, w.Contains(day(2024, time.June, 16)))
	assert.False(t, w.Contains(day(2024, time.June, 9)))
	assert.False(t, w.Contains(day(2024, time.June, 17)))

	// Day granularity: time-of-day must not matter.
	assert.True(t, w.Contains(time.Date(2024, time.June, 16, 23, 59, 0, 0, time.UTC)))
}
