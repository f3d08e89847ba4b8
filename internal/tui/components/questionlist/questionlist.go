// Package questionlist shows the 30-question cycle in order with edit,
// move, and reset actions.
package questionlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebrowne/thirtyq/internal/models"
)

type EditQuestionMsg struct {
	Question models.Question
}

// MoveQuestionMsg moves the selected question one slot up or down in the
// cycle.
type MoveQuestionMsg struct {
	ID int
	Up bool
}

type ResetOrderMsg struct{}

type Item struct {
	Question models.Question
	CycleDay int
}

func (i Item) Title() string {
	return fmt.Sprintf("Day %2d — Q%d", i.CycleDay, i.Question.ID)
}

func (i Item) Description() string {
	return i.Question.Text
}

func (i Item) FilterValue() string {
	return i.Question.Text
}

type KeyMap struct {
	Edit     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Reset    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit text"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move earlier"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move later"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset order"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(questions []models.Question, width, height int) Model {
	l := list.New(toItems(questions), list.NewDefaultDelegate(), width, height)
	l.Title = "Questions"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.MoveUp, keys.MoveDown, keys.Reset}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.MoveUp, keys.MoveDown, keys.Reset}
	}

	return Model{list: l, keys: keys}
}

func toItems(questions []models.Question) []list.Item {
	items := make([]list.Item, len(questions))
	for i, q := range questions {
		items[i] = Item{Question: q, CycleDay: i + 1}
	}
	return items
}

func (m *Model) SetQuestions(questions []models.Question) {
	m.list.SetItems(toItems(questions))
}

func (m *Model) Select(index int) {
	m.list.Select(index)
}

func (m Model) SelectedIndex() int {
	return m.list.Index()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditQuestionMsg{Question: i.Question} }
			}
		case key.Matches(msg, m.keys.MoveUp):
			if i, ok := m.list.SelectedItem().(Item); ok {
				id := i.Question.ID
				return m, func() tea.Msg { return MoveQuestionMsg{ID: id, Up: true} }
			}
		case key.Matches(msg, m.keys.MoveDown):
			if i, ok := m.list.SelectedItem().(Item); ok {
				id := i.Question.ID
				return m, func() tea.Msg { return MoveQuestionMsg{ID: id, Up: false} }
			}
		case key.Matches(msg, m.keys.Reset):
			return m, func() tea.Msg { return ResetOrderMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
