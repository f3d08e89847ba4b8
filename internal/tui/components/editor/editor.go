// Package editor is the today-view component: the day's question, the
// previous cycle's answer to it, and a textarea for writing.
package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/journal"
)

// AnswerChangedMsg is emitted whenever the textarea content changes, so the
// parent can schedule a debounced save.
type AnswerChangedMsg struct {
	Text string
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	previousStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	savedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type Model struct {
	textarea  textarea.Model
	dayCtx    journal.DayContext
	lastValue string
	saveNote  string
	width     int
}

func New() Model {
	ta := textarea.New()
	ta.Placeholder = "Write your answer..."
	ta.CharLimit = 0
	ta.SetHeight(10)
	ta.Focus()

	return Model{textarea: ta}
}

// SetContext loads a day's question and any existing answer into the editor.
func (m *Model) SetContext(dc journal.DayContext) {
	m.dayCtx = dc
	if dc.Entry != nil {
		m.textarea.SetValue(dc.Entry.Answer)
	} else {
		m.textarea.SetValue("")
	}
	m.lastValue = m.textarea.Value()
	m.saveNote = ""
}

func (m *Model) SetSaveNote(note string) {
	m.saveNote = note
}

func (m Model) Value() string {
	return m.textarea.Value()
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)

	if v := m.textarea.Value(); v != m.lastValue {
		m.lastValue = v
		m.saveNote = ""
		return m, tea.Batch(cmd, func() tea.Msg { return AnswerChangedMsg{Text: v} })
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s — day %d of %d, cycle %d",
		m.dayCtx.Day, m.dayCtx.DayNumber, constants.CycleLengthDays, m.dayCtx.CycleNumber)))
	b.WriteString("\n\n")
	b.WriteString(questionStyle.Render(m.dayCtx.Question.Text))
	b.WriteString("\n")

	if m.dayCtx.Previous != nil {
		prev := fmt.Sprintf("Last time (%s): %s", m.dayCtx.Previous.Day, m.dayCtx.Previous.Answer)
		b.WriteString("\n")
		b.WriteString(previousStyle.Render(prev))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.textarea.View())

	if m.saveNote != "" {
		b.WriteString("\n")
		b.WriteString(savedStyle.Render(m.saveNote))
	}

	return b.String()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.textarea.SetWidth(width - 4)
	if height > 14 {
		m.textarea.SetHeight(height - 12)
	}
}
