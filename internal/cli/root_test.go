package cli

import (
	"errors"
	"testing"
	"time"

	apperr "github.com/julianstephens/habitr/internal/errors"
	"github.com/julianstephens/habitr/internal/models"
)

func TestParsePeriodicity(t *testing.T) {
	cases := []struct {
		in      string
		want    models.Periodicity
		wantErr bool
	}{
		{"daily", models.PeriodicityDaily, false},
		{"weekly", models.PeriodicityWeekly, false},
		{"  Daily ", models.PeriodicityDaily, false},
		{"WEEKLY", models.PeriodicityWeekly, false},
		{"monthly", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParsePeriodicity(tc.in)
		if tc.wantErr {
			if !errors.Is(err, apperr.ErrInvalidPeriodicity) {
				t.Errorf("ParsePeriodicity(%q): expected ErrInvalidPeriodicity, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePeriodicity(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePeriodicity(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestPeriodicityFilter_EmptyMeansNoFilter(t *testing.T) {
	filter, err := PeriodicityFilter("")
	if err != nil {
		t.Fatalf("PeriodicityFilter failed: %v", err)
	}
	if filter != nil {
		t.Errorf("expected nil filter, got %v", *filter)
	}

	filter, err = PeriodicityFilter("weekly")
	if err != nil {
		t.Fatalf("PeriodicityFilter failed: %v", err)
	}
	if filter == nil || *filter != models.PeriodicityWeekly {
		t.Errorf("expected weekly filter, got %v", filter)
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-09-15T09:00:00Z", time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)},
		{"2025-09-15T09:00:00+02:00", time.Date(2025, 9, 15, 7, 0, 0, 0, time.UTC)},
		{"2025-09-15 09:00:00", time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)},
		{"2025-09-15", time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		if err != nil {
			t.Errorf("ParseTimestamp(%q) failed: %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseTimestamp(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, in := range []string{"", "not a time", "2025-13-40"} {
		if _, err := ParseTimestamp(in); err == nil {
			t.Errorf("ParseTimestamp(%q): expected error", in)
		}
	}
}
