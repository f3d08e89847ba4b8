package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ebrowne/thirtyq/internal/storage"
)

func setupStore(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "thirtyq.db")

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	if err := store.SaveSettings(storage.Settings{StartDate: "2025-01-01"}); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	return dbPath
}

func TestCreateAndListBackups(t *testing.T) {
	dbPath := setupStore(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Path != backupPath {
		t.Errorf("listed path %s, want %s", backups[0].Path, backupPath)
	}
	if backups[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestBackupOfMissingStoreFails(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error backing up missing store, got nil")
	}
}

func TestRotationKeepsMostRecent(t *testing.T) {
	dbPath := setupStore(t)
	mgr := NewManager(dbPath)

	// Fabricate more than MaxBackups old backup files with distinct
	// parseable timestamps.
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for i := 0; i < MaxBackups+5; i++ {
		name := fmt.Sprintf("%s202501%02d-120000.db", BackupFilePrefix, i+1)
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("old"), 0600); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
	// Newest first; the fresh backup survives rotation.
	if backups[len(backups)-1].Timestamp.After(backups[0].Timestamp) {
		t.Error("backups not sorted newest first")
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupStore(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Change the live store after the backup.
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	if err := store.SaveSettings(storage.Settings{StartDate: "2030-06-01"}); err != nil {
		t.Fatalf("failed to modify store: %v", err)
	}
	store.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored := storage.NewSQLiteStore(dbPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("failed to load restored store: %v", err)
	}
	defer restored.Close()

	settings, err := restored.GetSettings()
	if err != nil {
		t.Fatalf("failed to read restored settings: %v", err)
	}
	if settings.StartDate != "2025-01-01" {
		t.Errorf("restore did not revert settings: start date = %q", settings.StartDate)
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	dbPath := setupStore(t)
	mgr := NewManager(dbPath)

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}

	if err := mgr.RestoreBackup(garbage); err == nil {
		t.Error("expected error restoring invalid backup, got nil")
	}
}

func TestJSONStoreBackupIsFileCopy(t *testing.T) {
	jsonPath := filepath.Join(t.TempDir(), "thirtyq.json")
	store := storage.NewJSONStore(jsonPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	mgr := NewManager(jsonPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	src, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("failed to read source: %v", err)
	}
	dst, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(src) != string(dst) {
		t.Error("JSON backup content differs from source")
	}
}
