// Package journal orchestrates the resolver, question catalog, and storage
// into the operations the CLI and TUI call: resolving the day's question,
// saving answers idempotently, browsing history, and exporting the widget
// summary.
package journal

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/models"
	"github.com/ebrowne/thirtyq/internal/questions"
	"github.com/ebrowne/thirtyq/internal/resolver"
	"github.com/ebrowne/thirtyq/internal/storage"
	"github.com/ebrowne/thirtyq/internal/widget"
)

type Service struct {
	store storage.Provider
	now   func() time.Time
}

func NewService(store storage.Provider) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// DayContext is everything the UI needs to present one journal day.
type DayContext struct {
	Day         string // YYYY-MM-DD
	DayNumber   int
	CycleNumber int
	Question    models.Question
	Entry       *models.JournalEntry // existing entry for the day, if any
	Previous    *models.JournalEntry // most recent prior answer to the same question
}

// StartDate returns the configured journal anchor date.
func (s *Service) StartDate() (time.Time, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return time.Time{}, err
	}
	if settings.StartDate == "" {
		return time.Time{}, fmt.Errorf("start date not set, run 'thirtyq init' first")
	}
	start, err := time.Parse(constants.DayFormat, settings.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start date %q: %w", settings.StartDate, err)
	}
	return start, nil
}

// OrderedQuestions returns the catalog in the user's order with text
// overrides applied. Always exactly 30 questions; a broken catalog yields an
// empty list (degraded, never fatal).
func (s *Service) OrderedQuestions() ([]models.Question, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return nil, err
	}
	catalog, err := questions.Catalog()
	if err != nil {
		return nil, nil
	}
	return questions.Ordered(catalog, settings.QuestionOrder, settings.QuestionOverrides), nil
}

// ResolveDay computes the day/cycle numbers, due question, existing entry,
// and previous answer for an arbitrary date.
func (s *Service) ResolveDay(t time.Time) (DayContext, error) {
	start, err := s.StartDate()
	if err != nil {
		return DayContext{}, err
	}

	dc := DayContext{
		Day:         t.Format(constants.DayFormat),
		DayNumber:   resolver.DayNumber(start, t),
		CycleNumber: resolver.CycleNumber(start, t),
	}

	ordered, err := s.OrderedQuestions()
	if err != nil {
		return DayContext{}, err
	}
	if q, ok := resolver.QuestionForDay(ordered, dc.DayNumber); ok {
		dc.Question = q
	}

	if entry, ok, err := s.store.GetEntryForDay(dc.Day); err != nil {
		return DayContext{}, err
	} else if ok {
		dc.Entry = &entry
	}

	if dc.Question.ID != 0 {
		history, err := s.store.GetEntriesByQuestion(dc.Question.ID)
		if err != nil {
			return DayContext{}, err
		}
		dc.Previous = resolver.PreviousAnswer(history, dc.Question.ID, t)
	}

	return dc, nil
}

// Today resolves the current day.
func (s *Service) Today() (DayContext, error) {
	return s.ResolveDay(s.now())
}

// SaveAnswer records the answer for the calendar day of t. Saving twice on
// the same day updates the existing entry in place (same ID, new answer and
// timestamp) instead of creating a duplicate. After a successful write the
// widget snapshot is refreshed best-effort.
func (s *Service) SaveAnswer(t time.Time, answer string) (models.JournalEntry, error) {
	dc, err := s.ResolveDay(t)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if dc.Question.ID == 0 {
		return models.JournalEntry{}, fmt.Errorf("no question available for day %d", dc.DayNumber)
	}

	now := s.now()
	var entry models.JournalEntry
	if dc.Entry != nil {
		entry = *dc.Entry
		entry.Answer = answer
		entry.UpdatedAt = now
	} else {
		entry = models.JournalEntry{
			ID:           uuid.NewString(),
			QuestionID:   dc.Question.ID,
			QuestionText: dc.Question.Text,
			Answer:       answer,
			Day:          dc.Day,
			DayNumber:    dc.DayNumber,
			CycleNumber:  dc.CycleNumber,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	if err := s.store.SaveEntry(entry); err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to save entry: %w", err)
	}

	settings, err := s.store.GetSettings()
	if err == nil && settings.LastJournalDay != entry.Day {
		settings.LastJournalDay = entry.Day
		if err := s.store.SaveSettings(settings); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record last journal day: %v\n", err)
		}
	}

	s.syncWidget()

	return entry, nil
}

// UpdateEntry edits a historical entry's answer text.
func (s *Service) UpdateEntry(id, answer string) (models.JournalEntry, error) {
	entry, err := s.store.GetEntry(id)
	if err != nil {
		return models.JournalEntry{}, err
	}
	entry.Answer = answer
	entry.UpdatedAt = s.now()
	if err := s.store.SaveEntry(entry); err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to update entry: %w", err)
	}
	s.syncWidget()
	return entry, nil
}

func (s *Service) DeleteEntry(id string) error {
	if err := s.store.DeleteEntry(id); err != nil {
		return err
	}
	s.syncWidget()
	return nil
}

// EntriesForMonth returns the entries within t's calendar month, sorted by day.
func (s *Service) EntriesForMonth(t time.Time) ([]models.JournalEntry, error) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	next := first.AddDate(0, 1, 0)
	return s.store.GetEntriesInRange(first.Format(constants.DayFormat), next.Format(constants.DayFormat))
}

// HasJournaled reports whether an entry exists for the calendar day of t.
func (s *Service) HasJournaled(t time.Time) (bool, error) {
	_, ok, err := s.store.GetEntryForDay(t.Format(constants.DayFormat))
	return ok, err
}

// AdjacentDay finds the nearest journaled day before or after refDay,
// skipping days without content.
func (s *Service) AdjacentDay(refDay string, dir resolver.Direction) (string, bool, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return "", false, err
	}
	day, ok := resolver.AdjacentJournaledDay(entries, refDay, dir)
	return day, ok, nil
}

// Streak counts consecutive journaled days ending today, or ending yesterday
// when today has no entry yet (an in-progress day doesn't break the streak).
func (s *Service) Streak(t time.Time) (int, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return 0, err
	}
	return streakFrom(entries, t), nil
}

func streakFrom(entries []models.JournalEntry, t time.Time) int {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.Day] = true
	}

	cur := t
	if !days[cur.Format(constants.DayFormat)] {
		cur = cur.AddDate(0, 0, -1)
		if !days[cur.Format(constants.DayFormat)] {
			return 0
		}
	}

	streak := 0
	for days[cur.Format(constants.DayFormat)] {
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
	return streak
}

// Summary builds the widget snapshot as of t.
func (s *Service) Summary(t time.Time) (widget.Snapshot, error) {
	entries, err := s.store.GetAllEntries()
	if err != nil {
		return widget.Snapshot{}, err
	}

	monthPrefix := t.Format("2006-01")
	daySet := make(map[int]bool)
	monthly := make(map[string]int)
	for _, e := range entries {
		if len(e.Day) < 10 {
			continue
		}
		monthly[e.Day[:7]]++
		if e.Day[:7] == monthPrefix {
			day, err := time.Parse(constants.DayFormat, e.Day)
			if err == nil {
				daySet[day.Day()] = true
			}
		}
	}

	journaledDays := make([]int, 0, len(daySet))
	for d := 1; d <= 31; d++ {
		if daySet[d] {
			journaledDays = append(journaledDays, d)
		}
	}

	return widget.Snapshot{
		JournaledDays: journaledDays,
		TotalEntries:  len(entries),
		CurrentStreak: streakFrom(entries, t),
		MonthlyCounts: monthly,
		SyncedAt:      s.now(),
	}, nil
}

// SyncWidget writes the snapshot next to the journal database.
func (s *Service) SyncWidget() error {
	snap, err := s.Summary(s.now())
	if err != nil {
		return err
	}
	return widget.Write(widget.DefaultPath(s.store.GetConfigPath()), snap)
}

// syncWidget is the fire-and-forget variant used after writes. The snapshot
// is a cache; a failed export must never fail the journaling operation.
func (s *Service) syncWidget() {
	if err := s.SyncWidget(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to sync widget data: %v\n", err)
	}
}
