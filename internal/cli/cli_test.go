package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ebrowne/thirtyq/internal/journal"
	"github.com/ebrowne/thirtyq/internal/questions"
	"github.com/ebrowne/thirtyq/internal/storage"
)

func setupTestContext(t *testing.T) *Context {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "thirtyq.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.SaveSettings(storage.Settings{
		StartDate:     "2025-01-01",
		QuestionOrder: questions.DefaultOrder(),
	}); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	return &Context{
		Store:   store,
		Journal: journal.NewService(store),
	}
}

func TestParseDay(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	got, err := parseDay("today")
	if err != nil {
		t.Fatalf("parseDay(today) failed: %v", err)
	}
	if got.Format("2006-01-02") != today {
		t.Errorf("parseDay(today) = %s, want %s", got.Format("2006-01-02"), today)
	}

	got, err = parseDay("2025-03-15")
	if err != nil {
		t.Fatalf("parseDay(2025-03-15) failed: %v", err)
	}
	if got.Format("2006-01-02") != "2025-03-15" {
		t.Errorf("parseDay = %s, want 2025-03-15", got.Format("2006-01-02"))
	}

	for _, bad := range []string{"03/15/2025", "2025-13-01", "nonsense"} {
		if _, err := parseDay(bad); err == nil {
			t.Errorf("parseDay(%q) succeeded, want error", bad)
		}
	}
}

func TestParseMonth(t *testing.T) {
	got, err := parseMonth("2025-02")
	if err != nil {
		t.Fatalf("parseMonth failed: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.February || got.Day() != 1 {
		t.Errorf("parseMonth(2025-02) = %v, want first of February 2025", got)
	}

	if _, err := parseMonth("2025-02-01"); err == nil {
		t.Error("parseMonth accepted a full date, want error")
	}
}

func TestIsValidDay(t *testing.T) {
	if !isValidDay("2025-01-31") {
		t.Error("2025-01-31 should be valid")
	}
	if isValidDay("2025-1-31") || isValidDay("today") {
		t.Error("non-canonical day strings should be invalid")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 70); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := "line one\nline two and quite a lot more text than fits in the column at all"
	got := truncate(long, 20)
	if len(got) > 23 { // ellipsis rune is 3 bytes
		t.Errorf("truncate did not shorten: %q", got)
	}
}

func TestQuestionMovePersistsOrder(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &QuestionMoveCmd{ID: 5, Day: 1}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	if len(settings.QuestionOrder) != 30 {
		t.Fatalf("order length = %d, want 30", len(settings.QuestionOrder))
	}
	if settings.QuestionOrder[0] != 5 {
		t.Errorf("order[0] = %d, want 5", settings.QuestionOrder[0])
	}
	// Question 1 shifted down one slot.
	if settings.QuestionOrder[1] != 1 {
		t.Errorf("order[1] = %d, want 1", settings.QuestionOrder[1])
	}
}

func TestQuestionMoveRejectsBadTargets(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&QuestionMoveCmd{ID: 5, Day: 0}).Run(ctx); err == nil {
		t.Error("move to day 0 succeeded, want error")
	}
	if err := (&QuestionMoveCmd{ID: 99, Day: 3}).Run(ctx); err == nil {
		t.Error("move of unknown question succeeded, want error")
	}
}

func TestQuestionResetClearsCustomizations(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&QuestionEditCmd{ID: 2, Text: "Custom text?"}).Run(ctx); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if err := (&QuestionMoveCmd{ID: 30, Day: 1}).Run(ctx); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	if err := (&QuestionResetCmd{}).Run(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	if !isDefaultOrder(settings.QuestionOrder) || len(settings.QuestionOrder) != 30 {
		t.Errorf("order not reset: %v", settings.QuestionOrder)
	}
	if len(settings.QuestionOverrides) != 0 {
		t.Errorf("overrides not cleared: %v", settings.QuestionOverrides)
	}
}

func TestAnswerCmdRejectsEmptyText(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &AnswerCmd{Text: "   \n", Date: "2025-01-05"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("empty answer accepted, want error")
	}
}

func TestAnswerCmdSavesAndUpdates(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&AnswerCmd{Text: "first", Date: "2025-01-05"}).Run(ctx); err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if err := (&AnswerCmd{Text: "second", Date: "2025-01-05"}).Run(ctx); err != nil {
		t.Fatalf("re-answer failed: %v", err)
	}

	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		t.Fatalf("failed to read entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after same-day update, got %d", len(entries))
	}
	if entries[0].Answer != "second" {
		t.Errorf("answer = %q, want updated text", entries[0].Answer)
	}
}

func TestRenderMonthMarksJournaledDays(t *testing.T) {
	first := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	out := renderMonth(first, map[int]bool{3: true}, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC))

	if !strings.Contains(out, "February 2025") {
		t.Errorf("month header missing:\n%s", out)
	}
	if !strings.Contains(out, "3●") {
		t.Errorf("journaled day not marked:\n%s", out)
	}
	if !strings.Contains(out, "10·<") {
		t.Errorf("today not marked:\n%s", out)
	}
}
