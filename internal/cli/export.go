package cli

import (
	"fmt"
	"io"

	"github.com/julianstephens/habitr/internal/export"
)

type ExportCmd struct {
	Habits ExportHabitsCmd `cmd:"" help:"Export habits to JSON or CSV."`
	Checks ExportChecksCmd `cmd:"" help:"Export check events to JSON or CSV."`
}

type ExportHabitsCmd struct {
	Format string `short:"f" help:"Output format." enum:"json,csv" required:""`
	Path   string `help:"Output file path." required:""`
}

func (c *ExportHabitsCmd) Run(ctx *Context) error {
	habits, err := ctx.Tracker().ListHabits(nil)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error { return export.HabitsJSON(w, habits) }
	if c.Format == "csv" {
		write = func(w io.Writer) error { return export.HabitsCSV(w, habits) }
	}

	if err := export.ToFile(c.Path, write); err != nil {
		return err
	}
	fmt.Printf("Exported %d habits to %s\n", len(habits), c.Path)
	return nil
}

type ExportChecksCmd struct {
	Format string `short:"f" help:"Output format." enum:"json,csv" required:""`
	Path   string `help:"Output file path." required:""`
	Name   string `help:"Only export checks for this habit."`
}

func (c *ExportChecksCmd) Run(ctx *Context) error {
	checks, err := ctx.Tracker().ListChecks(c.Name)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error { return export.ChecksJSON(w, checks) }
	if c.Format == "csv" {
		write = func(w io.Writer) error { return export.ChecksCSV(w, checks) }
	}

	if err := export.ToFile(c.Path, write); err != nil {
		return err
	}
	fmt.Printf("Exported %d checks to %s\n", len(checks), c.Path)
	return nil
}
