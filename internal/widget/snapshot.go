// Package widget implements the one-way data channel between the journal and
// an external display surface (e.g. a desktop widget or status bar applet).
// The snapshot is a cache, never authoritative: the writer exports it
// best-effort after each journal write, and readers tolerate stale or missing
// files.
package widget

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SnapshotFileName is the snapshot's file name, placed next to the journal
// database.
const SnapshotFileName = "widget.json"

// Snapshot is the summary the display surface renders: which days of the
// current month have an entry, overall totals, and the current streak.
type Snapshot struct {
	JournaledDays []int          `json:"journaled_days"` // day-of-month values with an entry, current month
	TotalEntries  int            `json:"total_entries"`
	CurrentStreak int            `json:"current_streak"`
	MonthlyCounts map[string]int `json:"monthly_counts"` // "YYYY-MM" -> entry count
	SyncedAt      time.Time      `json:"synced_at"`
}

// DefaultPath returns the snapshot path for a given journal config path.
func DefaultPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), SnapshotFileName)
}

// Write atomically replaces the snapshot file.
func Write(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize widget snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write widget snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace widget snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot previously written by the main application. A missing
// file yields an empty snapshot and no error; readers render the empty state.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("failed to read widget snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse widget snapshot: %w", err)
	}
	return snap, nil
}
