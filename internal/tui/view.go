package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateLock {
		return m.viewLock()
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.editorModel.View())
	case StateCalendar:
		content = docStyle.Render(m.calendarModel.View())
	case StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case StateQuestions:
		content = docStyle.Render(m.questionModel.View())
	case StateEditQuestion, StateEditEntry:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		}
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateConfirmReset:
		content = m.viewConfirmReset()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, statusStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Calendar", "History", "Questions"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewLock() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		"thirtyq is locked",
		"",
		m.lockInput.View(),
		"",
		dangerStyle.Render(m.lockError),
	)
	if m.width == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this entry? This cannot be undone."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Reset question order and text to defaults?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
