package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitr/internal/models"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, msg.Height-4)
	}

	// Handle Add Habit State
	if m.state == StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateList
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			p := models.Periodicity(m.habitForm.Periodicity)
			if _, err := m.tracker.AddHabit(m.habitForm.Name, p); err != nil {
				m.err = err
				// Stay in form state on error to allow retry
				m.form.State = huh.StateNormal
			} else {
				m.err = nil
				m.status = fmt.Sprintf("Added %q", m.habitForm.Name)
				if err := m.refresh(); err != nil {
					m.err = err
				}
				m.state = StateList
			}
		case huh.StateAborted:
			m.state = StateList
		}
		return m, tea.Batch(cmds...)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Add):
			m.newHabitForm()
			m.state = StateAddHabit
			return m, m.form.Init()

		case key.Matches(msg, m.keys.Refresh):
			if err := m.refresh(); err != nil {
				m.err = err
			} else {
				m.err = nil
				m.status = "Refreshed"
			}
			return m, nil

		case key.Matches(msg, m.keys.Mark):
			item, ok := m.list.SelectedItem().(Item)
			if !ok {
				return m, nil
			}
			if _, err := m.tracker.Check(item.Habit.Name, nil); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.status = fmt.Sprintf("Checked %q", item.Habit.Name)
			if err := m.refresh(); err != nil {
				m.err = err
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
