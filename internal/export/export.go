// Package export renders habits and check events to JSON or CSV for
// downstream tooling. Timestamps are RFC 3339 UTC, matching the storage
// encoding.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/habitr/internal/models"
)

type habitRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Periodicity string `json:"periodicity"`
	CreatedAt   string `json:"created_at"`
}

type checkRow struct {
	ID          string `json:"id"`
	HabitID     string `json:"habit_id"`
	OccurredAt  string `json:"occurred_at"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func ts(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func habitRows(habits []models.Habit) []habitRow {
	rows := make([]habitRow, len(habits))
	for i, h := range habits {
		rows[i] = habitRow{
			ID:          h.ID,
			Name:        h.Name,
			Periodicity: string(h.Periodicity),
			CreatedAt:   ts(h.CreatedAt),
		}
	}
	return rows
}

func checkRows(checks []models.CheckEvent) []checkRow {
	rows := make([]checkRow, len(checks))
	for i, c := range checks {
		rows[i] = checkRow{
			ID:          c.ID,
			HabitID:     c.HabitID,
			OccurredAt:  ts(c.OccurredAt),
			PeriodStart: ts(c.PeriodStart),
			PeriodEnd:   ts(c.PeriodEnd),
		}
	}
	return rows
}

// HabitsJSON writes the habits as an indented JSON array.
func HabitsJSON(w io.Writer, habits []models.Habit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(habitRows(habits))
}

// HabitsCSV writes the habits as CSV with a header row.
func HabitsCSV(w io.Writer, habits []models.Habit) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "periodicity", "created_at"}); err != nil {
		return err
	}
	for _, r := range habitRows(habits) {
		if err := cw.Write([]string{r.ID, r.Name, r.Periodicity, r.CreatedAt}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ChecksJSON writes the check events as an indented JSON array.
func ChecksJSON(w io.Writer, checks []models.CheckEvent) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(checkRows(checks))
}

// ChecksCSV writes the check events as CSV with a header row.
func ChecksCSV(w io.Writer, checks []models.CheckEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "habit_id", "occurred_at", "period_start", "period_end"}); err != nil {
		return err
	}
	for _, r := range checkRows(checks) {
		if err := cw.Write([]string{r.ID, r.HabitID, r.OccurredAt, r.PeriodStart, r.PeriodEnd}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile creates the parent directory if needed and writes via fn.
func ToFile(path string, fn func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
