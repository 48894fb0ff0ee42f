package cli

import (
	"fmt"
	"time"
)

type CheckCmd struct {
	Name string `arg:"" help:"Habit name."`
	Ts   string `help:"Check-off instant (RFC 3339, e.g. 2025-09-15T09:00:00Z). Defaults to now."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	var at *time.Time
	if c.Ts != "" {
		t, err := ParseTimestamp(c.Ts)
		if err != nil {
			return err
		}
		at = &t
	}

	check, err := ctx.Tracker().Check(c.Name, at)
	if err != nil {
		return err
	}

	fmt.Printf("Checked %q for period %s\n", c.Name,
		formatPeriod(check.PeriodStart, check.PeriodEnd))
	return nil
}
