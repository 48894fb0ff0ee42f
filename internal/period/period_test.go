package period

import (
	"testing"
	"time"

	"github.com/julianstephens/habitr/internal/models"
)

func TestStartOfDay_TruncatesToMidnightUTC(t *testing.T) {
	ts := time.Date(2025, 9, 15, 13, 45, 12, 987654321, time.UTC)

	got := StartOfDay(ts)
	want := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("StartOfDay(%v) = %v, want %v", ts, got, want)
	}
}

func TestStartOfDay_NonUTCInput(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 2025-09-15 02:30 +05:00 is 2025-09-14 21:30 UTC
	ts := time.Date(2025, 9, 15, 2, 30, 0, 0, loc)

	got := StartOfDay(ts)
	want := time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("StartOfDay(%v) = %v, want %v", ts, got, want)
	}
}

func TestStartOfISOWeek_MidWeek(t *testing.T) {
	// 2025-09-18 is a Thursday; its ISO week starts Monday 2025-09-15.
	ts := time.Date(2025, 9, 18, 10, 0, 0, 0, time.UTC)

	got := StartOfISOWeek(ts)
	want := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("StartOfISOWeek(%v) = %v, want %v", ts, got, want)
	}
}

func TestStartOfISOWeek_MondayIsFixedPoint(t *testing.T) {
	monday := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	if got := StartOfISOWeek(monday); !got.Equal(monday) {
		t.Errorf("StartOfISOWeek(monday) = %v, want %v", got, monday)
	}

	lateMonday := time.Date(2025, 9, 15, 23, 59, 59, 0, time.UTC)
	if got := StartOfISOWeek(lateMonday); !got.Equal(monday) {
		t.Errorf("StartOfISOWeek(late monday) = %v, want %v", got, monday)
	}
}

func TestStartOfISOWeek_SundayBelongsToPrecedingMonday(t *testing.T) {
	// Sunday 2025-09-21 is the last day of the week starting 2025-09-15.
	sunday := time.Date(2025, 9, 21, 23, 0, 0, 0, time.UTC)
	want := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

	if got := StartOfISOWeek(sunday); !got.Equal(want) {
		t.Errorf("StartOfISOWeek(sunday) = %v, want %v", got, want)
	}
}

func TestStartOfISOWeek_YearBoundary(t *testing.T) {
	// Thursday 2026-01-01 falls in the ISO week starting Monday 2025-12-29.
	ts := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	want := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)

	if got := StartOfISOWeek(ts); !got.Equal(want) {
		t.Errorf("StartOfISOWeek(%v) = %v, want %v", ts, got, want)
	}
}

func TestBounds_Idempotent(t *testing.T) {
	ts := time.Date(2025, 9, 18, 14, 30, 0, 0, time.UTC)

	for _, p := range []models.Periodicity{models.PeriodicityDaily, models.PeriodicityWeekly} {
		start, end := Bounds(p, ts)

		again, _ := Bounds(p, start)
		if !again.Equal(start) {
			t.Errorf("%s: Bounds not idempotent: Bounds(start)=%v, start=%v", p, again, start)
		}
		if !end.Equal(start.Add(Step(p))) {
			t.Errorf("%s: end = %v, want start+step = %v", p, end, start.Add(Step(p)))
		}
	}
}

func TestBounds_HalfOpenInterval(t *testing.T) {
	// An instant exactly at a period end belongs to the next period.
	dayEnd := time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)

	start, _ := Bounds(models.PeriodicityDaily, dayEnd)
	if !start.Equal(dayEnd) {
		t.Errorf("instant at boundary: start = %v, want %v", start, dayEnd)
	}

	justBefore := dayEnd.Add(-time.Nanosecond)
	start, end := Bounds(models.PeriodicityDaily, justBefore)
	if !start.Equal(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("instant before boundary: start = %v", start)
	}
	if !end.Equal(dayEnd) {
		t.Errorf("instant before boundary: end = %v, want %v", end, dayEnd)
	}
}

func TestStep(t *testing.T) {
	if got := Step(models.PeriodicityDaily); got != 24*time.Hour {
		t.Errorf("Step(daily) = %v, want 24h", got)
	}
	if got := Step(models.PeriodicityWeekly); got != 7*24*time.Hour {
		t.Errorf("Step(weekly) = %v, want 168h", got)
	}
}
