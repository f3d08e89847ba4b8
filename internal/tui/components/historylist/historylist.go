// Package historylist shows past journal entries with edit and delete
// actions and jumps between journaled days.
package historylist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebrowne/thirtyq/internal/models"
)

type EditEntryMsg struct {
	Entry models.JournalEntry
}

type DeleteEntryMsg struct {
	ID string
}

// JumpDayMsg asks the parent to move the selection to the nearest journaled
// day in the given direction, skipping gaps.
type JumpDayMsg struct {
	FromDay string
	Forward bool
}

type Item struct {
	Entry models.JournalEntry
}

func (i Item) Title() string {
	return fmt.Sprintf("%s — Q%d (cycle %d)", i.Entry.Day, i.Entry.QuestionID, i.Entry.CycleNumber)
}

func (i Item) Description() string {
	return i.Entry.Answer
}

func (i Item) FilterValue() string {
	return i.Entry.Day + " " + i.Entry.QuestionText + " " + i.Entry.Answer
}

type KeyMap struct {
	Edit    key.Binding
	Delete  key.Binding
	PrevDay key.Binding
	NextDay key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev journaled day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next journaled day"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.JournalEntry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.Delete, keys.PrevDay, keys.NextDay}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.Delete, keys.PrevDay, keys.NextDay}
	}

	return Model{list: l, keys: keys}
}

func toItems(entries []models.JournalEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	return items
}

func (m *Model) SetEntries(entries []models.JournalEntry) {
	m.list.SetItems(toItems(entries))
}

// SelectDay moves the selection to the entry for the given day, if present.
func (m *Model) SelectDay(day string) {
	for i, item := range m.list.Items() {
		if it, ok := item.(Item); ok && it.Entry.Day == day {
			m.list.Select(i)
			return
		}
	}
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
				return m, func() tea.Msg { return EditEntryMsg{Entry: i.Entry} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Entry.ID} }
			}
		case key.Matches(msg, m.keys.PrevDay):
			if i, ok := m.list.SelectedItem().(Item); ok {
				day := i.Entry.Day
				return m, func() tea.Msg { return JumpDayMsg{FromDay: day, Forward: false} }
			}
		case key.Matches(msg, m.keys.NextDay):
			if i, ok := m.list.SelectedItem().(Item); ok {
				day := i.Entry.Day
				return m, func() tea.Msg { return JumpDayMsg{FromDay: day, Forward: true} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No entries yet.\n  Answer today's question to start your journal."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
