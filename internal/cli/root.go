package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ebrowne/thirtyq/internal/backup"
	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/journal"
	"github.com/ebrowne/thirtyq/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Journal *journal.Service
}

// PerformAutomaticBackup creates a silent backup, used on TUI startup. Backup
// failures are reported as warnings and never block the session.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// parseDay resolves a date argument to a time. Accepts YYYY-MM-DD, "today",
// and "yesterday".
func parseDay(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return time.Now(), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1), nil
	}

	t, err := time.Parse(constants.DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today', or 'yesterday': %w", err)
	}
	return t, nil
}

// parseMonth resolves a month argument (YYYY-MM or "current") to the first
// of that month.
func parseMonth(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "current":
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local), nil
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month format, use YYYY-MM or 'current': %w", err)
	}
	return t, nil
}

func isValidDay(s string) bool {
	_, err := time.Parse(constants.DayFormat, s)
	return err == nil
}

// truncate shortens answer text for list output.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
