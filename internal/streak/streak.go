// Package streak computes consecutive-period runs over the distinct
// period-start instants of a single habit. All functions are pure: input
// ordering is not trusted and duplicates are collapsed before counting.
package streak

import (
	"sort"
	"time"

	"github.com/julianstephens/habitr/internal/models"
	"github.com/julianstephens/habitr/internal/period"
)

// normalize sorts the period starts ascending and drops duplicates.
func normalize(starts []time.Time) []time.Time {
	if len(starts) == 0 {
		return nil
	}
	out := make([]time.Time, len(starts))
	copy(out, starts)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })

	dedup := out[:1]
	for _, s := range out[1:] {
		if !s.Equal(dedup[len(dedup)-1]) {
			dedup = append(dedup, s)
		}
	}
	return dedup
}

// Longest returns the length of the longest run of consecutive periods in
// starts, where consecutive means exactly one period step apart. Empty input
// yields 0, a single period yields 1.
func Longest(p models.Periodicity, starts []time.Time) int {
	sorted := normalize(starts)
	if len(sorted) == 0 {
		return 0
	}

	step := period.Step(p)
	longest := 1
	current := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == step {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

// Current returns the length of the trailing run of consecutive periods
// ending at the period containing now or the one immediately before it.
// If the most recent check is older than that, the habit has lapsed and the
// current streak is 0.
func Current(p models.Periodicity, starts []time.Time, now time.Time) int {
	sorted := normalize(starts)
	if len(sorted) == 0 {
		return 0
	}

	step := period.Step(p)
	nowStart, _ := period.Bounds(p, now)
	last := sorted[len(sorted)-1]
	if !last.Equal(nowStart) && !last.Equal(nowStart.Add(-step)) {
		return 0
	}

	current := 1
	for i := len(sorted) - 1; i > 0; i-- {
		if sorted[i].Sub(sorted[i-1]) != step {
			break
		}
		current++
	}
	return current
}
