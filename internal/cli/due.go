package cli

import "fmt"

type DueCmd struct {
	Periodicity string `short:"p" help:"Filter by periodicity (daily|weekly)." enum:"daily,weekly,"`
}

func (c *DueCmd) Run(ctx *Context) error {
	filter, err := PeriodicityFilter(c.Periodicity)
	if err != nil {
		return err
	}

	due, err := ctx.Tracker().Due(filter)
	if err != nil {
		return err
	}

	if len(due) == 0 {
		fmt.Println("Nothing due. Great job!")
		return nil
	}

	for _, h := range due {
		fmt.Printf("- %-6s | %s\n", h.Periodicity, h.Name)
	}
	return nil
}
