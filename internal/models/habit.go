package models

import "time"

// Periodicity is the cadence class of a habit.
type Periodicity string

const (
	PeriodicityDaily  Periodicity = "daily"
	PeriodicityWeekly Periodicity = "weekly"
)

// Valid reports whether p is one of the known periodicities.
func (p Periodicity) Valid() bool {
	return p == PeriodicityDaily || p == PeriodicityWeekly
}

// Habit represents a recurring practice to track. Name is unique and
// periodicity is fixed at creation.
type Habit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Periodicity Periodicity `json:"periodicity"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CheckEvent records one completion of a habit. PeriodStart is the canonical
// key: at most one event exists per (habit, period start) pair.
type CheckEvent struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}
