// Package monthgrid renders a navigable month calendar marking journaled
// days.
package monthgrid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebrowne/thirtyq/internal/constants"
)

// MonthChangedMsg asks the parent to reload entries for a new month.
type MonthChangedMsg struct {
	First time.Time
}

// OpenDayMsg asks the parent to open the selected day in the history view.
type OpenDayMsg struct {
	Day string
}

type KeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
	Left      key.Binding
	Right     key.Binding
	Open      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next month"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open day"),
		),
	}
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	journaledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236")).Bold(true)
)

type Model struct {
	first     time.Time // first of the displayed month
	selected  int       // selected day of month
	journaled map[int]bool
	keys      KeyMap
}

func New(first time.Time) Model {
	return Model{
		first:     time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, first.Location()),
		selected:  1,
		journaled: map[int]bool{},
		keys:      DefaultKeyMap(),
	}
}

// SetMonth changes the displayed month.
func (m *Model) SetMonth(first time.Time) {
	m.first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, first.Location())
	m.selected = 1
}

// SetJournaled marks which days of the displayed month have entries.
func (m *Model) SetJournaled(days map[int]bool) {
	m.journaled = days
}

func (m Model) First() time.Time {
	return m.first
}

// SelectedDay returns the selected date as YYYY-MM-DD.
func (m Model) SelectedDay() string {
	return m.first.AddDate(0, 0, m.selected-1).Format(constants.DayFormat)
}

func (m *Model) Select(day int) {
	if day >= 1 && day <= m.daysInMonth() {
		m.selected = day
	}
}

func (m Model) daysInMonth() int {
	return m.first.AddDate(0, 1, -1).Day()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.first = m.first.AddDate(0, -1, 0)
			m.selected = 1
			first := m.first
			return m, func() tea.Msg { return MonthChangedMsg{First: first} }
		case key.Matches(msg, m.keys.NextMonth):
			m.first = m.first.AddDate(0, 1, 0)
			m.selected = 1
			first := m.first
			return m, func() tea.Msg { return MonthChangedMsg{First: first} }
		case key.Matches(msg, m.keys.Left):
			if m.selected > 1 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Right):
			if m.selected < m.daysInMonth() {
				m.selected++
			}
		case key.Matches(msg, m.keys.Open):
			day := m.SelectedDay()
			return m, func() tea.Msg { return OpenDayMsg{Day: day} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.first.Format("January 2006")))
	b.WriteString("\n Su  Mo  Tu  We  Th  Fr  Sa\n")

	for i := 0; i < int(m.first.Weekday()); i++ {
		b.WriteString("    ")
	}

	total := m.daysInMonth()
	for d := 1; d <= total; d++ {
		cell := fmt.Sprintf("%2d", d)
		switch {
		case d == m.selected:
			cell = selectedStyle.Render(cell + "•")
		case m.journaled[d]:
			cell = journaledStyle.Render(cell + "●")
		default:
			cell = emptyStyle.Render(cell + "·")
		}
		b.WriteString(cell + " ")

		weekday := (int(m.first.Weekday()) + d) % 7
		if weekday == 0 && d != total {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(emptyStyle.Render("[/] change month  ←/→ select day  enter open  ● journaled"))
	return b.String()
}
