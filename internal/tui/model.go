package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitr/internal/clock"
	"github.com/julianstephens/habitr/internal/models"
	"github.com/julianstephens/habitr/internal/storage"
	"github.com/julianstephens/habitr/internal/tracker"
)

type SessionState int

const (
	StateList SessionState = iota
	StateAddHabit
)

// Item is one habit row in the dashboard list.
type Item struct {
	Habit   models.Habit
	Due     bool
	Current int
	Longest int
}

func (i Item) Title() string {
	marker := "✓"
	if i.Due {
		marker = "○"
	}
	return fmt.Sprintf("%s %s", marker, i.Habit.Name)
}

func (i Item) Description() string {
	state := "done this period"
	if i.Due {
		state = "due"
	}
	return fmt.Sprintf("%s · %s · streak %d (best %d)",
		i.Habit.Periodicity, state, i.Current, i.Longest)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type HabitFormModel struct {
	Name        string
	Periodicity string
}

type Model struct {
	store     storage.Provider
	tracker   *tracker.Tracker
	state     SessionState
	keys      KeyMap
	help      help.Model
	list      list.Model
	form      *huh.Form
	habitForm *HabitFormModel
	status    string
	err       error
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, clk clock.Clock) (Model, error) {
	t := tracker.New(store, clk)

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Habits"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	m := Model{
		store:   store,
		tracker: t,
		state:   StateList,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		list:    l,
	}

	if err := m.refresh(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// refresh rebuilds the list items from the store.
func (m *Model) refresh() error {
	habits, err := m.tracker.ListHabits(nil)
	if err != nil {
		return err
	}

	items := make([]list.Item, len(habits))
	for i, h := range habits {
		due, err := m.tracker.IsDue(h.Name)
		if err != nil {
			return err
		}
		current, err := m.tracker.CurrentStreak(h.Name)
		if err != nil {
			return err
		}
		longest, err := m.tracker.LongestStreak(h.Name)
		if err != nil {
			return err
		}
		items[i] = Item{
			Habit:   h,
			Due:     due,
			Current: current,
			Longest: longest,
		}
	}

	m.list.SetItems(items)
	return nil
}

func (m *Model) newHabitForm() {
	m.habitForm = &HabitFormModel{
		Periodicity: string(models.PeriodicityDaily),
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&m.habitForm.Name).
				Validate(huh.ValidateNotEmpty()),
			huh.NewSelect[string]().
				Title("Periodicity").
				Options(
					huh.NewOption("Daily", string(models.PeriodicityDaily)),
					huh.NewOption("Weekly", string(models.PeriodicityWeekly)),
				).
				Value(&m.habitForm.Periodicity),
		),
	)
}
