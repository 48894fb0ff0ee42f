package period

import (
	"time"

	"github.com/julianstephens/habitr/internal/models"
)

// Step returns the fixed length of one period for the given periodicity.
// Period starts are calendar-aligned, so plain duration arithmetic is enough
// to walk between consecutive periods.
func Step(p models.Periodicity) time.Duration {
	if p == models.PeriodicityWeekly {
		return 7 * 24 * time.Hour
	}
	return 24 * time.Hour
}

// StartOfDay truncates t to 00:00:00 UTC of the same calendar date.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfISOWeek truncates t to Monday 00:00:00 UTC of the ISO week
// containing t. ISO weeks start on Monday; no week-numbering rules apply
// beyond "Monday of this week".
func StartOfISOWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	// time.Weekday counts Sunday=0; ISO counts Monday=1..Sunday=7.
	isoWeekday := int(day.Weekday())
	if isoWeekday == 0 {
		isoWeekday = 7
	}
	return day.AddDate(0, 0, -(isoWeekday - 1))
}

// Bounds returns the half-open interval [start, end) of the period
// containing t under periodicity p. The end is exclusive.
func Bounds(p models.Periodicity, t time.Time) (start, end time.Time) {
	if p == models.PeriodicityWeekly {
		start = StartOfISOWeek(t)
	} else {
		start = StartOfDay(t)
	}
	return start, start.Add(Step(p))
}
