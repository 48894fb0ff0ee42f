package storage

import (
	"time"

	"github.com/julianstephens/habitr/internal/models"
)

// Provider is the storage port the tracker runs against. Implementations
// must enforce the (habit_id, period_start) uniqueness invariant atomically:
// two concurrent InsertCheck calls for the same period resolve to a single
// surviving row.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	CreateHabit(name string, periodicity models.Periodicity, createdAt time.Time) (models.Habit, error)
	FindHabitByName(name string) (models.Habit, error)
	ListHabits(filter *models.Periodicity) ([]models.Habit, error)

	// Checks
	FindCheck(habitID string, periodStart time.Time) (models.CheckEvent, error)
	InsertCheck(check models.CheckEvent) (models.CheckEvent, error)
	ListChecks(habitID string) ([]models.CheckEvent, error)

	// Utils
	GetConfigPath() string
}
