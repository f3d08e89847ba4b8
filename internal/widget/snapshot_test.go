package widget

import (
	"path/filepath"
	"testing"
	"time"
)

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), SnapshotFileName)

	snap := Snapshot{
		JournaledDays: []int{1, 5, 12},
		TotalEntries:  42,
		CurrentStreak: 3,
		MonthlyCounts: map[string]int{"2025-05": 12, "2025-04": 30},
		SyncedAt:      time.Date(2025, time.May, 12, 8, 0, 0, 0, time.UTC),
	}

	if err := Write(path, snap); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.TotalEntries != 42 || got.CurrentStreak != 3 {
		t.Errorf("totals lost: %+v", got)
	}
	if len(got.JournaledDays) != 3 || got.JournaledDays[2] != 12 {
		t.Errorf("journaled days lost: %v", got.JournaledDays)
	}
	if got.MonthlyCounts["2025-04"] != 30 {
		t.Errorf("monthly counts lost: %v", got.MonthlyCounts)
	}
	if !got.SyncedAt.Equal(snap.SyncedAt) {
		t.Errorf("synced_at: got %v, want %v", got.SyncedAt, snap.SyncedAt)
	}
}

func TestLoadMissingFileIsEmptyState(t *testing.T) {
	snap, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing snapshot should not error: %v", err)
	}
	if snap.TotalEntries != 0 || snap.CurrentStreak != 0 || len(snap.JournaledDays) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath("/home/x/.config/thirtyq/thirtyq.db")
	want := "/home/x/.config/thirtyq/widget.json"
	if got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}
