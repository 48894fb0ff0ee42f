package export

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitr/internal/models"
)

func fixtureHabits() []models.Habit {
	created := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
	return []models.Habit{
		{ID: "h-1", Name: "Run", Periodicity: models.PeriodicityDaily, CreatedAt: created},
		{ID: "h-2", Name: "Review", Periodicity: models.PeriodicityWeekly, CreatedAt: created},
	}
}

func fixtureChecks() []models.CheckEvent {
	day := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	return []models.CheckEvent{
		{
			ID:          "c-1",
			HabitID:     "h-1",
			OccurredAt:  day.Add(9 * time.Hour),
			PeriodStart: day,
			PeriodEnd:   day.AddDate(0, 0, 1),
		},
		{
			ID:          "c-2",
			HabitID:     "h-1",
			OccurredAt:  day.AddDate(0, 0, 1).Add(21 * time.Hour),
			PeriodStart: day.AddDate(0, 0, 1),
			PeriodEnd:   day.AddDate(0, 0, 2),
		},
	}
}

func TestHabitsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HabitsJSON(&buf, fixtureHabits()))

	g := goldie.New(t)
	g.Assert(t, "habits_json", buf.Bytes())
}

func TestHabitsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HabitsCSV(&buf, fixtureHabits()))

	g := goldie.New(t)
	g.Assert(t, "habits_csv", buf.Bytes())
}

func TestChecksJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ChecksJSON(&buf, fixtureChecks()))

	g := goldie.New(t)
	g.Assert(t, "checks_json", buf.Bytes())
}

func TestChecksCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ChecksCSV(&buf, fixtureChecks()))

	g := goldie.New(t)
	g.Assert(t, "checks_csv", buf.Bytes())
}

func TestHabitsJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HabitsJSON(&buf, nil))
	require.Equal(t, "[]\n", buf.String())
}

func TestToFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "habits.csv")

	err := ToFile(path, func(w io.Writer) error { return HabitsCSV(w, fixtureHabits()) })
	require.NoError(t, err)
	require.FileExists(t, path)
}
