package cli

import (
	"fmt"
	"time"
)

type AddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Periodicity string `short:"p" help:"Habit periodicity (daily|weekly)." enum:"daily,weekly,"`
}

func (c *AddCmd) Run(ctx *Context) error {
	name := c.Name
	periodicity := c.Periodicity

	// Without arguments, fall back to an interactive form.
	if name == "" || periodicity == "" {
		var err error
		name, periodicity, err = runAddForm(name, periodicity)
		if err != nil {
			return err
		}
	}

	p, err := ParsePeriodicity(periodicity)
	if err != nil {
		return err
	}

	habit, err := ctx.Tracker().AddHabit(name, p)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s) @ %s\n", habit.Name, habit.Periodicity,
		habit.CreatedAt.Format(time.RFC3339))
	return nil
}
