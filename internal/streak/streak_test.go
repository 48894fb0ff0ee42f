package streak

import (
	"testing"
	"time"

	"github.com/julianstephens/habitr/internal/models"
)

func day(d int) time.Time {
	// Days counted from Monday 2025-09-01.
	return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func week(w int) time.Time {
	// Weeks counted from Monday 2025-09-01.
	return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*w)
}

func TestLongest_Empty(t *testing.T) {
	if got := Longest(models.PeriodicityDaily, nil); got != 0 {
		t.Errorf("Longest(empty) = %d, want 0", got)
	}
}

func TestLongest_SinglePeriod(t *testing.T) {
	if got := Longest(models.PeriodicityDaily, []time.Time{day(0)}); got != 1 {
		t.Errorf("Longest(single) = %d, want 1", got)
	}
}

func TestLongest_RunWithGap(t *testing.T) {
	// Days 1,2,3 then a gap, then 5,6: longest run is 3.
	starts := []time.Time{day(1), day(2), day(3), day(5), day(6)}

	if got := Longest(models.PeriodicityDaily, starts); got != 3 {
		t.Errorf("Longest = %d, want 3", got)
	}
}

func TestLongest_WeeklyGap(t *testing.T) {
	// Weeks 0,1 then a skipped week, then 3: longest run is 2.
	starts := []time.Time{week(0), week(1), week(3)}

	if got := Longest(models.PeriodicityWeekly, starts); got != 2 {
		t.Errorf("Longest = %d, want 2", got)
	}
}

func TestLongest_OrderAndDuplicatesIgnored(t *testing.T) {
	starts := []time.Time{day(3), day(1), day(2), day(2), day(1)}

	if got := Longest(models.PeriodicityDaily, starts); got != 3 {
		t.Errorf("Longest = %d, want 3", got)
	}
}

func TestCurrent_Empty(t *testing.T) {
	if got := Current(models.PeriodicityDaily, nil, day(10)); got != 0 {
		t.Errorf("Current(empty) = %d, want 0", got)
	}
}

func TestCurrent_EndsInCurrentPeriod(t *testing.T) {
	starts := []time.Time{day(8), day(9), day(10)}
	now := day(10).Add(15 * time.Hour)

	if got := Current(models.PeriodicityDaily, starts, now); got != 3 {
		t.Errorf("Current = %d, want 3", got)
	}
}

func TestCurrent_EndsInPreviousPeriod(t *testing.T) {
	// Last check was yesterday; the streak is still alive today.
	starts := []time.Time{day(8), day(9)}
	now := day(10).Add(3 * time.Hour)

	if got := Current(models.PeriodicityDaily, starts, now); got != 2 {
		t.Errorf("Current = %d, want 2", got)
	}
}

func TestCurrent_Lapsed(t *testing.T) {
	// Last check two days ago: the streak is broken.
	starts := []time.Time{day(7), day(8)}
	now := day(10).Add(3 * time.Hour)

	if got := Current(models.PeriodicityDaily, starts, now); got != 0 {
		t.Errorf("Current = %d, want 0", got)
	}
}

func TestCurrent_WeeklyFourConsecutive(t *testing.T) {
	starts := []time.Time{week(0), week(1), week(2), week(3)}
	now := week(3).Add(48 * time.Hour)

	if got := Current(models.PeriodicityWeekly, starts, now); got != 4 {
		t.Errorf("Current = %d, want 4", got)
	}
}

func TestCurrent_TrailingRunOnly(t *testing.T) {
	// A longer run earlier does not count toward the current streak.
	starts := []time.Time{week(0), week(1), week(2), week(4)}
	now := week(4).Add(time.Hour)

	if got := Current(models.PeriodicityWeekly, starts, now); got != 1 {
		t.Errorf("Current = %d, want 1", got)
	}
	if got := Longest(models.PeriodicityWeekly, starts); got != 3 {
		t.Errorf("Longest = %d, want 3", got)
	}
}
