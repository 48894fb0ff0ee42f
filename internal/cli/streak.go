package cli

import "fmt"

type StreakCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *StreakCmd) Run(ctx *Context) error {
	t := ctx.Tracker()

	longest, err := t.LongestStreak(c.Name)
	if err != nil {
		return err
	}
	current, err := t.CurrentStreak(c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Longest streak for %q: %d\n", c.Name, longest)
	fmt.Printf("Current streak for %q: %d\n", c.Name, current)
	return nil
}

type StreakAllCmd struct{}

func (c *StreakAllCmd) Run(ctx *Context) error {
	habit, best, err := ctx.Tracker().BestStreak()
	if err != nil {
		return err
	}

	if habit == nil {
		fmt.Println("No streaks yet.")
		return nil
	}

	fmt.Printf("Best longest streak: %d (%s)\n", best, habit.Name)
	return nil
}
