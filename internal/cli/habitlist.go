package cli

import (
	"fmt"
	"time"
)

type ListCmd struct {
	Periodicity string `short:"p" help:"Filter by periodicity (daily|weekly)." enum:"daily,weekly,"`
}

func (c *ListCmd) Run(ctx *Context) error {
	filter, err := PeriodicityFilter(c.Periodicity)
	if err != nil {
		return err
	}

	habits, err := ctx.Tracker().ListHabits(filter)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		if filter != nil {
			fmt.Printf("No %s habits.\n", *filter)
		} else {
			fmt.Println("No habits yet.")
		}
		return nil
	}

	for _, h := range habits {
		fmt.Printf("- %-6s | %s | created %s\n", h.Periodicity, h.Name,
			h.CreatedAt.Format(time.RFC3339))
	}
	return nil
}
