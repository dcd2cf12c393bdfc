package stats

import "time"

// Window is an inclusive calendar-date range used to filter entries.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the window, bounds included.
// Comparison is at day granularity.
func (w Window) Contains(d time.Time) bool {
	day := truncateDay(d)
	return !day.Before(truncateDay(w.Start)) && !day.After(truncateDay(w.End))
}

// CurrentWeek returns the Monday-to-Sunday window containing now.
func CurrentWeek(now time.Time) Window {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		// Go counts Sunday as 0; it is the last day of a Monday-based week.
		offset = 6
	}
	start := truncateDay(now).AddDate(0, 0, -offset)
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// CurrentMonth returns the first-to-last calendar window of now's month.
func CurrentMonth(now time.Time) Window {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return Window{Start: first, End: last}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
