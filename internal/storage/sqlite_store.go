package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	apperr "github.com/julianstephens/habitr/internal/errors"
	"github.com/julianstephens/habitr/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS habits (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	periodicity TEXT NOT NULL CHECK (periodicity IN ('daily', 'weekly')),
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS checks (
	id           TEXT PRIMARY KEY,
	habit_id     TEXT NOT NULL REFERENCES habits(id),
	occurred_at  TEXT NOT NULL,
	period_start TEXT NOT NULL,
	period_end   TEXT NOT NULL,
	UNIQUE (habit_id, period_start)
);

CREATE INDEX IF NOT EXISTS idx_checks_habit_period ON checks(habit_id, period_start);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitr init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent; running it on load keeps old databases
	// usable after an upgrade that adds a table or index.
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) CreateHabit(name string, periodicity models.Periodicity, createdAt time.Time) (models.Habit, error) {
	h := models.Habit{
		ID:          newID(),
		Name:        name,
		Periodicity: periodicity,
		CreatedAt:   createdAt.UTC(),
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, periodicity, created_at)
		VALUES (?, ?, ?, ?)`,
		h.ID, h.Name, string(h.Periodicity), h.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperr.ErrDuplicateName)
		}
		return models.Habit{}, err
	}

	return h, nil
}

func (s *SQLiteStore) FindHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, periodicity, created_at
		FROM habits WHERE name = ?`, name)

	h, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperr.ErrNotFound)
		}
		return models.Habit{}, err
	}
	return h, nil
}

func (s *SQLiteStore) ListHabits(filter *models.Periodicity) ([]models.Habit, error) {
	query := `SELECT id, name, periodicity, created_at FROM habits`
	var args []any
	if filter != nil {
		query += ` WHERE periodicity = ? ORDER BY name ASC`
		args = append(args, string(*filter))
	} else {
		query += ` ORDER BY periodicity ASC, name ASC`
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) FindCheck(habitID string, periodStart time.Time) (models.CheckEvent, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, occurred_at, period_start, period_end
		FROM checks WHERE habit_id = ? AND period_start = ?`,
		habitID, periodStart.UTC().Format(time.RFC3339))

	c, err := scanCheck(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.CheckEvent{}, fmt.Errorf("check for period %s: %w",
				periodStart.UTC().Format(time.RFC3339), apperr.ErrNotFound)
		}
		return models.CheckEvent{}, err
	}
	return c, nil
}

// InsertCheck inserts the check unless a row for (habit_id, period_start)
// already exists, then returns the surviving row. ON CONFLICT DO NOTHING
// makes concurrent inserts for the same period collapse to one record.
func (s *SQLiteStore) InsertCheck(check models.CheckEvent) (models.CheckEvent, error) {
	_, err := s.db.Exec(`
		INSERT INTO checks (id, habit_id, occurred_at, period_start, period_end)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, period_start) DO NOTHING`,
		check.ID, check.HabitID,
		check.OccurredAt.UTC().Format(time.RFC3339),
		check.PeriodStart.UTC().Format(time.RFC3339),
		check.PeriodEnd.UTC().Format(time.RFC3339))
	if err != nil {
		return models.CheckEvent{}, err
	}

	return s.FindCheck(check.HabitID, check.PeriodStart)
}

func (s *SQLiteStore) ListChecks(habitID string) ([]models.CheckEvent, error) {
	query := `SELECT id, habit_id, occurred_at, period_start, period_end FROM checks`
	var args []any
	if habitID != "" {
		query += ` WHERE habit_id = ?`
		args = append(args, habitID)
	}
	query += ` ORDER BY period_start ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []models.CheckEvent
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var periodicity, createdAt string

	if err := row.Scan(&h.ID, &h.Name, &periodicity, &createdAt); err != nil {
		return models.Habit{}, err
	}

	h.Periodicity = models.Periodicity(periodicity)
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	h.CreatedAt = t
	return h, nil
}

func scanCheck(row rowScanner) (models.CheckEvent, error) {
	var c models.CheckEvent
	var occurredAt, periodStart, periodEnd string

	if err := row.Scan(&c.ID, &c.HabitID, &occurredAt, &periodStart, &periodEnd); err != nil {
		return models.CheckEvent{}, err
	}

	var err error
	if c.OccurredAt, err = time.Parse(time.RFC3339, occurredAt); err != nil {
		return models.CheckEvent{}, fmt.Errorf("failed to parse occurred_at: %w", err)
	}
	if c.PeriodStart, err = time.Parse(time.RFC3339, periodStart); err != nil {
		return models.CheckEvent{}, fmt.Errorf("failed to parse period_start: %w", err)
	}
	if c.PeriodEnd, err = time.Parse(time.RFC3339, periodEnd); err != nil {
		return models.CheckEvent{}, fmt.Errorf("failed to parse period_end: %w", err)
	}
	return c, nil
}
