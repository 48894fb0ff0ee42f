package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitr/internal/clock"
	apperr "github.com/julianstephens/habitr/internal/errors"
	"github.com/julianstephens/habitr/internal/models"
	"github.com/julianstephens/habitr/internal/storage"
	"github.com/julianstephens/habitr/internal/tracker"
)

type Context struct {
	Store storage.Provider
	Clock clock.Clock
}

// Tracker builds the habit ledger over the context's ports.
func (c *Context) Tracker() *tracker.Tracker {
	return tracker.New(c.Store, c.Clock)
}

// ParsePeriodicity maps a flag value to a periodicity.
func ParsePeriodicity(s string) (models.Periodicity, error) {
	p := models.Periodicity(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%q: %w", s, apperr.ErrInvalidPeriodicity)
	}
	return p, nil
}

// PeriodicityFilter maps an optional flag value to a filter; empty means no
// filter.
func PeriodicityFilter(s string) (*models.Periodicity, error) {
	if s == "" {
		return nil, nil
	}
	p, err := ParsePeriodicity(s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseTimestamp accepts RFC 3339 or "YYYY-MM-DD[ T]HH:MM:SS" and returns
// the instant in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.Replace(strings.TrimSpace(s), " ", "T", 1)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (expected RFC 3339, e.g. 2025-09-15T09:00:00Z)", s)
}

func formatPeriod(start, end time.Time) string {
	return fmt.Sprintf("[%s .. %s)", start.Format(time.RFC3339), end.Format(time.RFC3339))
}
