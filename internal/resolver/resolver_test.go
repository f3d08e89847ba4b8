package resolver

import (
	"testing"
	"time"

	"github.com/ebrowne/thirtyq/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayAndCycleNumbers(t *testing.T) {
	start := date(2025, time.January, 1)

	tests := []struct {
		elapsed   int
		wantDay   int
		wantCycle int
	}{
		{0, 1, 1},
		{1, 2, 1},
		{29, 30, 1},
		{30, 1, 2},
		{31, 2, 2},
		{59, 30, 2},
		{60, 1, 3},
		{89, 30, 3},
		{90, 1, 4},
	}

	for _, tt := range tests {
		target := start.AddDate(0, 0, tt.elapsed)
		if got := DayNumber(start, target); got != tt.wantDay {
			t.Errorf("DayNumber at elapsed=%d: got %d, want %d", tt.elapsed, got, tt.wantDay)
		}
		if got := CycleNumber(start, target); got != tt.wantCycle {
			t.Errorf("CycleNumber at elapsed=%d: got %d, want %d", tt.elapsed, got, tt.wantCycle)
		}
	}
}

func TestDayNumberClampsBeforeStart(t *testing.T) {
	start := date(2025, time.June, 15)

	for _, daysBefore := range []int{1, 5, 30, 365} {
		target := start.AddDate(0, 0, -daysBefore)
		if got := DayNumber(start, target); got != 1 {
			t.Errorf("DayNumber %d days before start: got %d, want 1", daysBefore, got)
		}
		if got := CycleNumber(start, target); got != 1 {
			t.Errorf("CycleNumber %d days before start: got %d, want 1", daysBefore, got)
		}
	}
}

func TestElapsedDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.March, 1, 23, 59, 0, 0, time.UTC)
	target := time.Date(2025, time.March, 2, 0, 1, 0, 0, time.UTC)

	if got := ElapsedDays(start, target); got != 1 {
		t.Errorf("ElapsedDays across midnight: got %d, want 1", got)
	}
}

func TestElapsedDaysAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// US spring-forward 2025 happened on March 9.
	start := time.Date(2025, time.March, 8, 12, 0, 0, 0, loc)
	target := time.Date(2025, time.March, 10, 12, 0, 0, 0, loc)

	if got := ElapsedDays(start, target); got != 2 {
		t.Errorf("ElapsedDays across DST: got %d, want 2", got)
	}
}

func TestQuestionForDay(t *testing.T) {
	ordered := make([]models.Question, 30)
	for i := range ordered {
		ordered[i] = models.Question{ID: i + 1, Text: "q"}
	}

	q, ok := QuestionForDay(ordered, 1)
	if !ok || q.ID != 1 {
		t.Errorf("day 1: got %v ok=%v, want question 1", q, ok)
	}
	q, ok = QuestionForDay(ordered, 30)
	if !ok || q.ID != 30 {
		t.Errorf("day 30: got %v ok=%v, want question 30", q, ok)
	}
	if _, ok := QuestionForDay(ordered, 0); ok {
		t.Error("day 0 should not resolve")
	}
	if _, ok := QuestionForDay(ordered, 31); ok {
		t.Error("day 31 should not resolve")
	}
	if _, ok := QuestionForDay(nil, 1); ok {
		t.Error("empty list should not resolve")
	}
}

func TestPreviousAnswerPicksLatestPriorEntry(t *testing.T) {
	// Entries for question 3 at elapsed days 0, 30, and 60 relative to a
	// Jan 1 start. Querying as of day 60 must return the day-30 entry.
	entries := []models.JournalEntry{
		{ID: "a", QuestionID: 3, Day: "2025-01-01"},
		{ID: "b", QuestionID: 3, Day: "2025-01-31"},
		{ID: "c", QuestionID: 3, Day: "2025-03-02"},
		{ID: "d", QuestionID: 7, Day: "2025-02-15"},
	}

	got := PreviousAnswer(entries, 3, date(2025, time.March, 2))
	if got == nil || got.ID != "b" {
		t.Fatalf("PreviousAnswer: got %+v, want entry b (2025-01-31)", got)
	}
}

func TestPreviousAnswerExcludesSameDay(t *testing.T) {
	entries := []models.JournalEntry{
		{ID: "today", QuestionID: 5, Day: "2025-04-10"},
	}

	// An entry on the reference day itself is not "previous".
	if got := PreviousAnswer(entries, 5, time.Date(2025, time.April, 10, 18, 30, 0, 0, time.UTC)); got != nil {
		t.Errorf("same-day entry returned as previous answer: %+v", got)
	}
}

func TestPreviousAnswerNone(t *testing.T) {
	entries := []models.JournalEntry{
		{ID: "a", QuestionID: 2, Day: "2025-01-05"},
	}

	if got := PreviousAnswer(entries, 9, date(2025, time.February, 1)); got != nil {
		t.Errorf("expected nil for unanswered question, got %+v", got)
	}
	if got := PreviousAnswer(nil, 2, date(2025, time.February, 1)); got != nil {
		t.Errorf("expected nil for empty entry set, got %+v", got)
	}
}

func TestAdjacentJournaledDay(t *testing.T) {
	entries := []models.JournalEntry{
		{Day: "2025-01-03"},
		{Day: "2025-01-07"},
		{Day: "2025-01-20"},
	}

	tests := []struct {
		ref    string
		dir    Direction
		want   string
		wantOK bool
	}{
		{"2025-01-07", Previous, "2025-01-03", true},
		{"2025-01-07", Next, "2025-01-20", true},
		{"2025-01-10", Previous, "2025-01-07", true}, // skips blank days
		{"2025-01-10", Next, "2025-01-20", true},
		{"2025-01-03", Previous, "", false},
		{"2025-01-20", Next, "", false},
	}

	for _, tt := range tests {
		got, ok := AdjacentJournaledDay(entries, tt.ref, tt.dir)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("AdjacentJournaledDay(%s, %v) = (%q, %v), want (%q, %v)",
				tt.ref, tt.dir, got, ok, tt.want, tt.wantOK)
		}
	}
}
