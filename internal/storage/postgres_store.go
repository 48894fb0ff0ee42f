package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"

	apperr "github.com/julianstephens/habitr/internal/errors"
	"github.com/julianstephens/habitr/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS habits (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	periodicity TEXT NOT NULL CHECK (periodicity IN ('daily', 'weekly')),
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS checks (
	id           TEXT PRIMARY KEY,
	habit_id     TEXT NOT NULL REFERENCES habits(id),
	occurred_at  TIMESTAMPTZ NOT NULL,
	period_start TIMESTAMPTZ NOT NULL,
	period_end   TIMESTAMPTZ NOT NULL,
	UNIQUE (habit_id, period_start)
);
`

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// PostgresStore backs the storage port with a shared PostgreSQL database.
// The unique constraint on (habit_id, period_start) plus ON CONFLICT DO
// NOTHING gives the same idempotency guarantee as the SQLite backend under
// concurrent callers.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password. Credentials belong in the OS keyring, the environment, or
// .pgpass, never on the command line.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, isSet := u.User.Password(); isSet {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs.
	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) CreateHabit(name string, periodicity models.Periodicity, createdAt time.Time) (models.Habit, error) {
	h := models.Habit{
		ID:          newID(),
		Name:        name,
		Periodicity: periodicity,
		CreatedAt:   createdAt.UTC(),
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, periodicity, created_at)
		VALUES ($1, $2, $3, $4)`,
		h.ID, h.Name, string(h.Periodicity), h.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperr.ErrDuplicateName)
		}
		return models.Habit{}, err
	}

	return h, nil
}

func (s *PostgresStore) FindHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, periodicity, created_at
		FROM habits WHERE name = $1`, name)

	var h models.Habit
	var periodicity string
	err := row.Scan(&h.ID, &h.Name, &periodicity, &h.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperr.ErrNotFound)
		}
		return models.Habit{}, err
	}
	h.Periodicity = models.Periodicity(periodicity)
	h.CreatedAt = h.CreatedAt.UTC()
	return h, nil
}

func (s *PostgresStore) ListHabits(filter *models.Periodicity) ([]models.Habit, error) {
	query := `SELECT id, name, periodicity, created_at FROM habits`
	var args []any
	if filter != nil {
		query += ` WHERE periodicity = $1 ORDER BY name ASC`
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
		var h models.Habit
		var periodicity string
		if err := rows.Scan(&h.ID, &h.Name, &periodicity, &h.CreatedAt); err != nil {
			return nil, err
		}
		h.Periodicity = models.Periodicity(periodicity)
		h.CreatedAt = h.CreatedAt.UTC()
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *PostgresStore) FindCheck(habitID string, periodStart time.Time) (models.CheckEvent, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, occurred_at, period_start, period_end
		FROM checks WHERE habit_id = $1 AND period_start = $2`,
		habitID, periodStart.UTC())

	var c models.CheckEvent
	err := row.Scan(&c.ID, &c.HabitID, &c.OccurredAt, &c.PeriodStart, &c.PeriodEnd)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.CheckEvent{}, fmt.Errorf("check for period %s: %w",
				periodStart.UTC().Format(time.RFC3339), apperr.ErrNotFound)
		}
		return models.CheckEvent{}, err
	}
	c.OccurredAt = c.OccurredAt.UTC()
	c.PeriodStart = c.PeriodStart.UTC()
	c.PeriodEnd = c.PeriodEnd.UTC()
	return c, nil
}

func (s *PostgresStore) InsertCheck(check models.CheckEvent) (models.CheckEvent, error) {
	_, err := s.db.Exec(`
		INSERT INTO checks (id, habit_id, occurred_at, period_start, period_end)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (habit_id, period_start) DO NOTHING`,
		check.ID, check.HabitID,
		check.OccurredAt.UTC(), check.PeriodStart.UTC(), check.PeriodEnd.UTC())
	if err != nil {
		return models.CheckEvent{}, err
	}

	return s.FindCheck(check.HabitID, check.PeriodStart)
}

func (s *PostgresStore) ListChecks(habitID string) ([]models.CheckEvent, error) {
	query := `SELECT id, habit_id, occurred_at, period_start, period_end FROM checks`
	var args []any
	if habitID != "" {
		query += ` WHERE habit_id = $1`
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
		var c models.CheckEvent
		if err := rows.Scan(&c.ID, &c.HabitID, &c.OccurredAt, &c.PeriodStart, &c.PeriodEnd); err != nil {
			return nil, err
		}
		c.OccurredAt = c.OccurredAt.UTC()
		c.PeriodStart = c.PeriodStart.UTC()
		c.PeriodEnd = c.PeriodEnd.UTC()
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
