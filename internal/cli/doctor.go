package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitr/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: period uniqueness invariant
	if err := checkPeriodUniqueness(ctx); err != nil {
		fmt.Printf("❌ Check uniqueness: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Check uniqueness: OK\n")
	}

	// Check 3: clock sanity
	if err := checkClock(ctx); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	// Check 4: concurrent habitr processes (warning only; the SQLite and
	// JSON backends are single-process)
	if err := checkConcurrentProcesses(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

// checkPeriodUniqueness audits the at-most-one-check-per-period invariant
// over all stored checks.
func checkPeriodUniqueness(ctx *Context) error {
	checks, err := ctx.Store.ListChecks("")
	if err != nil {
		return fmt.Errorf("failed to list checks: %w", err)
	}

	seen := make(map[string]bool, len(checks))
	for _, c := range checks {
		key := c.HabitID + "|" + c.PeriodStart.UTC().Format(time.RFC3339)
		if seen[key] {
			return fmt.Errorf("duplicate check for habit %s in period starting %s",
				c.HabitID, c.PeriodStart.Format(time.RFC3339))
		}
		seen[key] = true
	}

	return nil
}

func checkClock(ctx *Context) error {
	now := ctx.Clock.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}

func checkConcurrentProcesses() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %v", err)
	}

	self := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		if strings.EqualFold(p.Executable(), self) {
			count++
		}
	}

	if count > 1 {
		return fmt.Errorf("found %d running %s processes; concurrent writers to the same store are not supported", count, self)
	}

	return nil
}
