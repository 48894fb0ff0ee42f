// Package tracker is the orchestration layer over the storage and clock
// ports: it normalizes check-off instants into periods, enforces the
// one-check-per-period contract, and answers due and streak queries.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitr/internal/clock"
	apperr "github.com/julianstephens/habitr/internal/errors"
	"github.com/julianstephens/habitr/internal/logger"
	"github.com/julianstephens/habitr/internal/models"
	"github.com/julianstephens/habitr/internal/period"
	"github.com/julianstephens/habitr/internal/streak"
	"github.com/julianstephens/habitr/internal/storage"
)

type Tracker struct {
	store storage.Provider
	clock clock.Clock
}

func New(store storage.Provider, clk clock.Clock) *Tracker {
	return &Tracker{
		store: store,
		clock: clk,
	}
}

// AddHabit creates a habit with a unique, non-empty name. Periodicity is
// immutable after creation.
func (t *Tracker) AddHabit(name string, periodicity models.Periodicity) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, fmt.Errorf("habit name cannot be empty")
	}
	if !periodicity.Valid() {
		return models.Habit{}, fmt.Errorf("%q: %w", periodicity, apperr.ErrInvalidPeriodicity)
	}

	return t.store.CreateHabit(name, periodicity, t.clock.Now())
}

// Check records a completion of the named habit for the period containing
// at (or now, if at is nil). Checking twice in the same period is a no-op
// that returns the existing event: repeated checks never inflate streaks or
// create duplicate rows.
func (t *Tracker) Check(name string, at *time.Time) (models.CheckEvent, error) {
	habit, err := t.store.FindHabitByName(name)
	if err != nil {
		return models.CheckEvent{}, err
	}

	occurred := t.clock.Now()
	if at != nil {
		occurred = at.UTC()
	}
	start, end := period.Bounds(habit.Periodicity, occurred)

	existing, err := t.store.FindCheck(habit.ID, start)
	if err == nil {
		logger.Debug("check already recorded for period", "habit", name, "period_start", start)
		return existing, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return models.CheckEvent{}, err
	}

	check := models.CheckEvent{
		ID:          uuid.New().String(),
		HabitID:     habit.ID,
		OccurredAt:  occurred,
		PeriodStart: start,
		PeriodEnd:   end,
	}

	// The store resolves a concurrent duplicate to the surviving row.
	return t.store.InsertCheck(check)
}

// IsDue reports whether the named habit has no check in the period
// containing now.
func (t *Tracker) IsDue(name string) (bool, error) {
	habit, err := t.store.FindHabitByName(name)
	if err != nil {
		return false, err
	}
	return t.isDue(habit)
}

func (t *Tracker) isDue(habit models.Habit) (bool, error) {
	start, _ := period.Bounds(habit.Periodicity, t.clock.Now())

	_, err := t.store.FindCheck(habit.ID, start)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return true, nil
	}
	return false, err
}

// Due returns the habits with no check in their current period, optionally
// filtered by periodicity.
func (t *Tracker) Due(filter *models.Periodicity) ([]models.Habit, error) {
	habits, err := t.store.ListHabits(filter)
	if err != nil {
		return nil, err
	}

	var due []models.Habit
	for _, h := range habits {
		d, err := t.isDue(h)
		if err != nil {
			return nil, err
		}
		if d {
			due = append(due, h)
		}
	}
	return due, nil
}

// ListHabits returns habits ordered by periodicity then name, optionally
// filtered by periodicity.
func (t *Tracker) ListHabits(filter *models.Periodicity) ([]models.Habit, error) {
	return t.store.ListHabits(filter)
}

// ListChecks returns check events ordered by period start. An empty name
// returns checks for all habits.
func (t *Tracker) ListChecks(name string) ([]models.CheckEvent, error) {
	if name == "" {
		return t.store.ListChecks("")
	}

	habit, err := t.store.FindHabitByName(name)
	if err != nil {
		return nil, err
	}
	return t.store.ListChecks(habit.ID)
}

// LongestStreak returns the length of the longest run of consecutive
// completed periods for the named habit.
func (t *Tracker) LongestStreak(name string) (int, error) {
	habit, starts, err := t.periodStarts(name)
	if err != nil {
		return 0, err
	}
	return streak.Longest(habit.Periodicity, starts), nil
}

// CurrentStreak returns the length of the trailing run ending at the
// current or immediately preceding period, or 0 if the habit has lapsed.
func (t *Tracker) CurrentStreak(name string) (int, error) {
	habit, starts, err := t.periodStarts(name)
	if err != nil {
		return 0, err
	}
	return streak.Current(habit.Periodicity, starts, t.clock.Now()), nil
}

// BestStreak returns the habit with the best longest streak overall. The
// habit is nil when no checks have been recorded yet.
func (t *Tracker) BestStreak() (*models.Habit, int, error) {
	habits, err := t.store.ListHabits(nil)
	if err != nil {
		return nil, 0, err
	}

	var best *models.Habit
	bestLen := 0
	for _, h := range habits {
		checks, err := t.store.ListChecks(h.ID)
		if err != nil {
			return nil, 0, err
		}
		s := streak.Longest(h.Periodicity, periodStartsOf(checks))
		if s > bestLen {
			bestLen = s
			habit := h
			best = &habit
		}
	}
	return best, bestLen, nil
}

func (t *Tracker) periodStarts(name string) (models.Habit, []time.Time, error) {
	habit, err := t.store.FindHabitByName(name)
	if err != nil {
		return models.Habit{}, nil, err
	}

	checks, err := t.store.ListChecks(habit.ID)
	if err != nil {
		return models.Habit{}, nil, err
	}
	return habit, periodStartsOf(checks), nil
}

func periodStartsOf(checks []models.CheckEvent) []time.Time {
	starts := make([]time.Time, len(checks))
	for i, c := range checks {
		starts[i] = c.PeriodStart
	}
	return starts
}
