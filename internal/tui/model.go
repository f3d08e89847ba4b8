// Package tui is the interactive journaling interface: today's question with
// debounced autosave, a month calendar, entry history, and question
// management, behind an optional passcode lock.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/journal"
	"github.com/ebrowne/thirtyq/internal/storage"
	"github.com/ebrowne/thirtyq/internal/tui/components/editor"
	"github.com/ebrowne/thirtyq/internal/tui/components/historylist"
	"github.com/ebrowne/thirtyq/internal/tui/components/monthgrid"
	"github.com/ebrowne/thirtyq/internal/tui/components/questionlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateCalendar
	StateHistory
	StateQuestions
	StateLock
	StateEditQuestion
	StateEditEntry
	StateConfirmDelete
	StateConfirmReset
)

const tabCount = 4

type Model struct {
	store   storage.Provider
	journal *journal.Service

	state     SessionState
	keys      KeyMap
	help      help.Model
	quitting  bool
	statusMsg string
	width     int
	height    int

	startDate     time.Time
	editorModel   editor.Model
	calendarModel monthgrid.Model
	historyModel  historylist.Model
	questionModel questionlist.Model

	autosaver *journal.Autosaver

	// Passcode lock
	locked       bool
	passcode     string
	lockInput    textinput.Model
	lockError    string
	lockReturnTo SessionState
	lockAttempts int

	// Edit forms
	form            *huh.Form
	editText        string
	editQuestionID  int
	editEntryID     string
	entryToDeleteID string
}

func NewModel(store storage.Provider, svc *journal.Service) (Model, error) {
	settings, err := store.GetSettings()
	if err != nil {
		return Model{}, err
	}

	start, err := svc.StartDate()
	if err != nil {
		return Model{}, err
	}

	dc, err := svc.Today()
	if err != nil {
		return Model{}, err
	}

	ed := editor.New()
	ed.SetContext(dc)

	entries, err := store.GetAllEntries()
	if err != nil {
		return Model{}, err
	}

	ordered, err := svc.OrderedQuestions()
	if err != nil {
		return Model{}, err
	}

	now := time.Now()
	cal := monthgrid.New(now)
	cal.Select(now.Day())

	m := Model{
		store:         store,
		journal:       svc,
		state:         StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		startDate:     start,
		editorModel:   ed,
		calendarModel: cal,
		historyModel:  historylist.New(entries, 0, 0),
		questionModel: questionlist.New(ordered, 0, 0),
		autosaver: journal.NewAutosaver(constants.AutosaveDelay, func(text string) error {
			_, err := svc.SaveAnswer(time.Now(), text)
			return err
		}),
	}
	m.refreshCalendar()

	if settings.PasscodeEnabled && settings.Passcode != "" {
		ti := textinput.New()
		ti.Placeholder = "passcode"
		ti.EchoMode = textinput.EchoPassword
		ti.Focus()

		m.locked = true
		m.passcode = settings.Passcode
		m.lockInput = ti
		m.lockReturnTo = StateToday
		m.state = StateLock
	}

	return m, nil
}

func (m Model) Init() tea.Cmd {
	if m.state == StateLock {
		return textinput.Blink
	}
	return m.editorModel.Init()
}

// refreshToday reloads the editor's day context after an external change.
func (m *Model) refreshToday() {
	if dc, err := m.journal.Today(); err == nil {
		m.editorModel.SetContext(dc)
	}
}

// refreshHistory reloads the history list from the store.
func (m *Model) refreshHistory() {
	if entries, err := m.store.GetAllEntries(); err == nil {
		m.historyModel.SetEntries(entries)
	}
}

// refreshQuestions reloads the ordered question list.
func (m *Model) refreshQuestions() {
	if ordered, err := m.journal.OrderedQuestions(); err == nil {
		m.questionModel.SetQuestions(ordered)
	}
}

// refreshCalendar reloads journaled-day markers for the displayed month.
func (m *Model) refreshCalendar() {
	entries, err := m.journal.EntriesForMonth(m.calendarModel.First())
	if err != nil {
		return
	}
	days := make(map[int]bool, len(entries))
	for _, e := range entries {
		if t, perr := time.Parse(constants.DayFormat, e.Day); perr == nil {
			days[t.Day()] = true
		}
	}
	m.calendarModel.SetJournaled(days)
}
