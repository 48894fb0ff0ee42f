package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	apperr "github.com/julianstephens/habitr/internal/errors"
	"github.com/julianstephens/habitr/internal/models"
)

// jsonStore is the on-disk document for the JSON backend. Checks are keyed
// by habit ID and period start so the uniqueness invariant is structural.
type jsonStore struct {
	Version int                           `json:"version"`
	Habits  map[string]models.Habit       `json:"habits"` // keyed by habit ID
	Checks  map[string]models.CheckEvent  `json:"checks"` // keyed by checkKey
}

func checkKey(habitID string, periodStart time.Time) string {
	return habitID + "|" + periodStart.UTC().Format(time.RFC3339)
}

// JSONStore persists everything in a single JSON file. Suited to small data
// sets and tests; not safe for concurrent processes.
type JSONStore struct {
	path  string
	store *jsonStore
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &jsonStore{
		Version: 1,
		Habits:  make(map[string]models.Habit),
		Checks:  make(map[string]models.CheckEvent),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.store != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitr init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &jsonStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Habits == nil {
		s.store.Habits = make(map[string]models.Habit)
	}
	if s.store.Checks == nil {
		s.store.Checks = make(map[string]models.CheckEvent)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) CreateHabit(name string, periodicity models.Periodicity, createdAt time.Time) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	for _, h := range s.store.Habits {
		if h.Name == name {
			return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperr.ErrDuplicateName)
		}
	}

	h := models.Habit{
		ID:          newID(),
		Name:        name,
		Periodicity: periodicity,
		CreatedAt:   createdAt.UTC(),
	}
	s.store.Habits[h.ID] = h

	if err := s.save(); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (s *JSONStore) FindHabitByName(name string) (models.Habit, error) {
	if s.store == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	for _, h := range s.store.Habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperr.ErrNotFound)
}

func (s *JSONStore) ListHabits(filter *models.Periodicity) ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var habits []models.Habit
	for _, h := range s.store.Habits {
		if filter != nil && h.Periodicity != *filter {
			continue
		}
		habits = append(habits, h)
	}

	sort.Slice(habits, func(i, j int) bool {
		if habits[i].Periodicity != habits[j].Periodicity {
			return habits[i].Periodicity < habits[j].Periodicity
		}
		return habits[i].Name < habits[j].Name
	})
	return habits, nil
}

func (s *JSONStore) FindCheck(habitID string, periodStart time.Time) (models.CheckEvent, error) {
	if s.store == nil {
		return models.CheckEvent{}, fmt.Errorf("storage not loaded")
	}

	c, ok := s.store.Checks[checkKey(habitID, periodStart)]
	if !ok {
		return models.CheckEvent{}, fmt.Errorf("check for period %s: %w",
			periodStart.UTC().Format(time.RFC3339), apperr.ErrNotFound)
	}
	return c, nil
}

func (s *JSONStore) InsertCheck(check models.CheckEvent) (models.CheckEvent, error) {
	if s.store == nil {
		return models.CheckEvent{}, fmt.Errorf("storage not loaded")
	}

	key := checkKey(check.HabitID, check.PeriodStart)
	if existing, ok := s.store.Checks[key]; ok {
		return existing, nil
	}

	check.OccurredAt = check.OccurredAt.UTC()
	check.PeriodStart = check.PeriodStart.UTC()
	check.PeriodEnd = check.PeriodEnd.UTC()
	s.store.Checks[key] = check

	if err := s.save(); err != nil {
		return models.CheckEvent{}, err
	}
	return check, nil
}

func (s *JSONStore) ListChecks(habitID string) ([]models.CheckEvent, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var checks []models.CheckEvent
	for _, c := range s.store.Checks {
		if habitID != "" && c.HabitID != habitID {
			continue
		}
		checks = append(checks, c)
	}

	sort.Slice(checks, func(i, j int) bool {
		return checks[i].PeriodStart.Before(checks[j].PeriodStart)
	})
	return checks, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
