package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ebrowne/thirtyq/internal/questions"
	"github.com/ebrowne/thirtyq/internal/resolver"
	"github.com/ebrowne/thirtyq/internal/tui/components/editor"
	"github.com/ebrowne/thirtyq/internal/tui/components/historylist"
	"github.com/ebrowne/thirtyq/internal/tui/components/monthgrid"
	"github.com/ebrowne/thirtyq/internal/tui/components/questionlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.editorModel.SetSize(msg.Width, msg.Height-4)
		m.historyModel.SetSize(msg.Width-4, msg.Height-6)
		m.questionModel.SetSize(msg.Width-4, msg.Height-6)

	case tea.KeyMsg:
		if m.state == StateLock {
			return m.updateLock(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			// Flush any pending autosave before leaving.
			if err := m.autosaver.Close(); err != nil {
				m.statusMsg = fmt.Sprintf("save failed: %v", err)
			}
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state < tabCount {
			switch {
			case key.Matches(msg, m.keys.Tab):
				m.state = (m.state + 1) % tabCount
				return m, nil
			case key.Matches(msg, m.keys.ShiftTab):
				m.state = (m.state - 1 + tabCount) % tabCount
				return m, nil
			}
		}

	case editor.AnswerChangedMsg:
		if strings.TrimSpace(msg.Text) != "" {
			m.autosaver.Update(msg.Text)
		}
		return m, nil

	case monthgrid.MonthChangedMsg:
		// Nothing to browse before the journal's start date.
		startMonth := time.Date(m.startDate.Year(), m.startDate.Month(), 1, 0, 0, 0, 0, msg.First.Location())
		if msg.First.Before(startMonth) {
			m.calendarModel.SetMonth(startMonth)
		}
		m.refreshCalendar()
		return m, nil

	case monthgrid.OpenDayMsg:
		m.state = StateHistory
		m.historyModel.SelectDay(msg.Day)
		return m, nil

	case historylist.JumpDayMsg:
		dir := resolver.Previous
		if msg.Forward {
			dir = resolver.Next
		}
		if day, ok, err := m.journal.AdjacentDay(msg.FromDay, dir); err == nil && ok {
			m.historyModel.SelectDay(day)
		}
		return m, nil

	case historylist.EditEntryMsg:
		m.editEntryID = msg.Entry.ID
		m.editText = msg.Entry.Answer
		m.form = m.newTextForm("Edit answer", &m.editText)
		m.state = StateEditEntry
		return m, m.form.Init()

	case historylist.DeleteEntryMsg:
		m.entryToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case questionlist.EditQuestionMsg:
		m.editQuestionID = msg.Question.ID
		m.editText = msg.Question.Text
		m.form = m.newTextForm("Edit question text", &m.editText)
		m.state = StateEditQuestion
		return m, m.form.Init()

	case questionlist.MoveQuestionMsg:
		m.moveQuestion(msg.ID, msg.Up)
		return m, nil

	case questionlist.ResetOrderMsg:
		m.state = StateConfirmReset
		return m, nil
	}

	return m.updateState(msg)
}

// updateState routes messages to whichever component owns the current state.
func (m Model) updateState(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case StateToday:
		m.editorModel, cmd = m.editorModel.Update(msg)
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Save) {
			if err := m.autosaver.Flush(); err != nil {
				m.editorModel.SetSaveNote(fmt.Sprintf("save failed: %v", err))
			} else {
				m.editorModel.SetSaveNote("Saved.")
				m.refreshHistory()
				m.refreshCalendar()
			}
		}
		return m, cmd

	case StateCalendar:
		m.calendarModel, cmd = m.calendarModel.Update(msg)
		return m, cmd

	case StateHistory:
		m.historyModel, cmd = m.historyModel.Update(msg)
		return m, cmd

	case StateQuestions:
		m.questionModel, cmd = m.questionModel.Update(msg)
		return m, cmd

	case StateEditQuestion, StateEditEntry:
		return m.updateForm(msg)

	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)

	case StateConfirmReset:
		return m.updateConfirmReset(msg)
	}

	return m, nil
}

func (m Model) updateLock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.lockInput.Value() == m.passcode {
			m.locked = false
			m.state = m.lockReturnTo
			return m, m.editorModel.Init()
		}
		m.lockAttempts++
		m.lockError = "Wrong passcode."
		m.lockInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.lockInput, cmd = m.lockInput.Update(msg)
	return m, cmd
}

func (m *Model) newTextForm(title string, value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Value(value).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("text cannot be empty")
					}
					return nil
				}),
		),
	)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case StateEditQuestion:
			m.applyQuestionEdit()
			m.state = StateQuestions
		case StateEditEntry:
			m.applyEntryEdit()
			m.state = StateHistory
		}
		m.form = nil
		return m, nil
	case huh.StateAborted:
		if m.state == StateEditQuestion {
			m.state = StateQuestions
		} else {
			m.state = StateHistory
		}
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) applyQuestionEdit() {
	settings, err := m.store.GetSettings()
	if err != nil {
		m.statusMsg = fmt.Sprintf("failed to read settings: %v", err)
		return
	}
	if settings.QuestionOverrides == nil {
		settings.QuestionOverrides = make(map[int]string)
	}
	settings.QuestionOverrides[m.editQuestionID] = strings.TrimSpace(m.editText)
	if err := m.store.SaveSettings(settings); err != nil {
		m.statusMsg = fmt.Sprintf("failed to save question: %v", err)
		return
	}
	m.refreshQuestions()
	m.refreshToday()
	m.statusMsg = fmt.Sprintf("Updated Q%d.", m.editQuestionID)
}

func (m *Model) applyEntryEdit() {
	if _, err := m.journal.UpdateEntry(m.editEntryID, strings.TrimSpace(m.editText)); err != nil {
		m.statusMsg = fmt.Sprintf("failed to update entry: %v", err)
		return
	}
	m.refreshHistory()
	m.refreshToday()
	m.statusMsg = "Entry updated."
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y":
			if err := m.journal.DeleteEntry(m.entryToDeleteID); err != nil {
				m.statusMsg = fmt.Sprintf("failed to delete entry: %v", err)
			} else {
				m.statusMsg = "Entry deleted."
				m.refreshHistory()
				m.refreshCalendar()
				m.refreshToday()
			}
			m.entryToDeleteID = ""
			m.state = StateHistory
		case "n", "esc":
			m.entryToDeleteID = ""
			m.state = StateHistory
		}
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y":
			settings, err := m.store.GetSettings()
			if err == nil {
				settings.QuestionOrder = questions.DefaultOrder()
				settings.QuestionOverrides = nil
				err = m.store.SaveSettings(settings)
			}
			if err != nil {
				m.statusMsg = fmt.Sprintf("failed to reset questions: %v", err)
			} else {
				m.statusMsg = "Questions reset to defaults."
				m.refreshQuestions()
				m.refreshToday()
			}
			m.state = StateQuestions
		case "n", "esc":
			m.state = StateQuestions
		}
	}
	return m, nil
}

// moveQuestion swaps the question one slot earlier or later in the cycle.
func (m *Model) moveQuestion(id int, up bool) {
	ordered, err := m.journal.OrderedQuestions()
	if err != nil || len(ordered) == 0 {
		return
	}
	order := questions.OrderIDs(ordered)

	from := -1
	for i, qid := range order {
		if qid == id {
			from = i
			break
		}
	}
	to := from - 1
	if !up {
		to = from + 1
	}
	if from == -1 || to < 0 || to >= len(order) {
		return
	}
	order[from], order[to] = order[to], order[from]

	settings, err := m.store.GetSettings()
	if err != nil {
		return
	}
	settings.QuestionOrder = order
	if err := m.store.SaveSettings(settings); err != nil {
		m.statusMsg = fmt.Sprintf("failed to save order: %v", err)
		return
	}
	m.refreshQuestions()
	m.refreshToday()
	m.questionModel.Select(to)
}
