package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitr/internal/models"
)

// runAddForm prompts for the missing add-habit fields.
func runAddForm(name, periodicity string) (string, string, error) {
	if periodicity == "" {
		periodicity = string(models.PeriodicityDaily)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&name).
				Validate(huh.ValidateNotEmpty()),
			huh.NewSelect[string]().
				Title("Periodicity").
				Options(
					huh.NewOption("Daily", string(models.PeriodicityDaily)),
					huh.NewOption("Weekly", string(models.PeriodicityWeekly)),
				).
				Value(&periodicity),
		),
	)

	if err := form.Run(); err != nil {
		return "", "", err
	}
	return name, periodicity, nil
}
