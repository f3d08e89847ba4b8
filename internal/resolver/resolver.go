// Package resolver maps calendar dates onto the 30-day question rotation.
// All functions are pure: they take the journal start date (or a set of
// stored entries) and a target date, and compute day/cycle numbers or locate
// related entries. Dates before the start date clamp to day 1 / cycle 1
// rather than erroring.
package resolver

import (
	"time"

	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/models"
)

// Direction selects which neighbor AdjacentJournaledDay looks for.
type Direction int

const (
	Previous Direction = iota
	Next
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ElapsedDays returns the number of whole calendar days between start and
// target. Negative when target precedes start. Computed on UTC midnights so
// DST transitions can't produce off-by-one day counts.
func ElapsedDays(start, target time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(s).Hours() / 24)
}

// DayNumber returns the 1-based position of target within its cycle (1-30).
// Targets before the start date clamp to day 1.
func DayNumber(start, target time.Time) int {
	elapsed := ElapsedDays(start, target)
	if elapsed < 0 {
		return 1
	}
	return (elapsed % constants.CycleLengthDays) + 1
}

// CycleNumber returns which pass through the question set target falls in
// (1+). Targets before the start date clamp to cycle 1.
func CycleNumber(start, target time.Time) int {
	elapsed := ElapsedDays(start, target)
	if elapsed < 0 {
		return 1
	}
	return (elapsed / constants.CycleLengthDays) + 1
}

// QuestionForDay returns the question due on the given day number. The
// ordered list is expected to hold exactly 30 questions (see the questions
// package); ok is false when the list can't cover the day number.
func QuestionForDay(ordered []models.Question, dayNumber int) (models.Question, bool) {
	if dayNumber < 1 || dayNumber > len(ordered) {
		return models.Question{}, false
	}
	return ordered[dayNumber-1], true
}

// PreviousAnswer returns the most recent entry for the given question
// strictly before the calendar day of `before`, or nil if none exists. The
// selection is by date ordering, not cycle number, so it stays correct when
// the question order changes or days are skipped.
func PreviousAnswer(entries []models.JournalEntry, questionID int, before time.Time) *models.JournalEntry {
	cutoff := before.Format(constants.DayFormat)

	var best *models.JournalEntry
	for i := range entries {
		e := &entries[i]
		if e.QuestionID != questionID || e.Day >= cutoff {
			continue
		}
		if best == nil || e.Day > best.Day {
			best = e
		}
	}
	return best
}

// AdjacentJournaledDay scans entries for the nearest journaled day strictly
// before or after refDay (YYYY-MM-DD). Lets history browsing skip blank days.
// ok is false when no such day exists.
func AdjacentJournaledDay(entries []models.JournalEntry, refDay string, dir Direction) (string, bool) {
	var best string
	for i := range entries {
		day := entries[i].Day
		switch dir {
		case Previous:
			if day < refDay && (best == "" || day > best) {
				best = day
			}
		case Next:
			if day > refDay && (best == "" || day < best) {
				best = day
			}
		}
	}
	return best, best != ""
}
