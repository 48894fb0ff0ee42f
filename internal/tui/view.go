package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateAddHabit {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("New habit"),
			m.form.View(),
		)
	}

	status := ""
	if m.err != nil {
		status = errorStyle.Render("Error: " + m.err.Error())
	} else if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.list.View(),
		status,
		m.help.View(m.keys),
	)
}
