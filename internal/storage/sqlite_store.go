package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/models"
	_ "modernc.org/sqlite"
)

const schemaVersion = 1

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'thirtyq init' first")
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer model: the foreground process is the only mutator.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return fmt.Errorf("failed to exec pragma %q: %w", p, err)
		}
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read user_version: %w", err)
	}

	if version >= schemaVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

func (s *SQLiteStore) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS entries (
		id            TEXT PRIMARY KEY,
		question_id   INTEGER NOT NULL,
		question_text TEXT NOT NULL,
		answer        TEXT NOT NULL,
		day           TEXT NOT NULL,
		day_number    INTEGER NOT NULL,
		cycle_number  INTEGER NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_day      ON entries(day);
	CREATE INDEX IF NOT EXISTS idx_entries_question ON entries(question_id);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than this build supports (%d); upgrade thirtyq", version, schemaVersion)
	}
	if version < schemaVersion {
		return s.migrate()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case constants.SettingStartDate:
			settings.StartDate = value
		case constants.SettingPasscodeEnabled:
			settings.PasscodeEnabled = value == "true"
		case constants.SettingPasscode:
			settings.Passcode = value
		case constants.SettingLastJournalDay:
			settings.LastJournalDay = value
		case constants.SettingQuestionOrder:
			var order []int
			if err := json.Unmarshal([]byte(value), &order); err != nil {
				return Settings{}, fmt.Errorf("parsing question_order: %w", err)
			}
			settings.QuestionOrder = order
		case constants.SettingQuestionOverrides:
			overrides := map[int]string{}
			if err := json.Unmarshal([]byte(value), &overrides); err != nil {
				return Settings{}, fmt.Errorf("parsing question_overrides: %w", err)
			}
			settings.QuestionOverrides = overrides
		}
	}

	return settings, rows.Err()
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	orderJSON, err := json.Marshal(settings.QuestionOrder)
	if err != nil {
		return fmt.Errorf("failed to marshal question order: %w", err)
	}
	overridesJSON, err := json.Marshal(settings.QuestionOverrides)
	if err != nil {
		return fmt.Errorf("failed to marshal question overrides: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := [][2]string{
		{constants.SettingStartDate, settings.StartDate},
		{constants.SettingPasscodeEnabled, strconv.FormatBool(settings.PasscodeEnabled)},
		{constants.SettingPasscode, settings.Passcode},
		{constants.SettingQuestionOrder, string(orderJSON)},
		{constants.SettingQuestionOverrides, string(overridesJSON)},
		{constants.SettingLastJournalDay, settings.LastJournalDay},
	}
	for _, kv := range pairs {
		if _, err := stmt.Exec(kv[0], kv[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) SaveEntry(entry models.JournalEntry) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO entries (
			id, question_id, question_text, answer, day, day_number, cycle_number, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.QuestionID, entry.QuestionText, entry.Answer, entry.Day,
		entry.DayNumber, entry.CycleNumber,
		entry.CreatedAt.UTC().Format(time.RFC3339),
		entry.UpdatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

const entryColumns = "id, question_id, question_text, answer, day, day_number, cycle_number, created_at, updated_at"

func scanEntry(row interface{ Scan(...any) error }) (models.JournalEntry, error) {
	var e models.JournalEntry
	var createdAt, updatedAt string

	err := row.Scan(
		&e.ID, &e.QuestionID, &e.QuestionText, &e.Answer, &e.Day,
		&e.DayNumber, &e.CycleNumber, &createdAt, &updatedAt,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		e.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		e.UpdatedAt = t
	}

	return e, nil
}

func (s *SQLiteStore) GetEntry(id string) (models.JournalEntry, error) {
	row := s.db.QueryRow("SELECT "+entryColumns+" FROM entries WHERE id = ?", id)
	entry, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.JournalEntry{}, fmt.Errorf("entry not found: %s", id)
		}
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (s *SQLiteStore) GetEntryForDay(day string) (models.JournalEntry, bool, error) {
	row := s.db.QueryRow("SELECT "+entryColumns+" FROM entries WHERE day = ? ORDER BY updated_at DESC LIMIT 1", day)
	entry, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.JournalEntry{}, false, nil
		}
		return models.JournalEntry{}, false, err
	}
	return entry, true, nil
}

func (s *SQLiteStore) GetEntriesByQuestion(questionID int) ([]models.JournalEntry, error) {
	return s.queryEntries("SELECT "+entryColumns+" FROM entries WHERE question_id = ? ORDER BY day", questionID)
}

// GetEntriesInRange returns entries with fromDay <= day < toDay, sorted by day.
func (s *SQLiteStore) GetEntriesInRange(fromDay, toDay string) ([]models.JournalEntry, error) {
	return s.queryEntries("SELECT "+entryColumns+" FROM entries WHERE day >= ? AND day < ? ORDER BY day", fromDay, toDay)
}

func (s *SQLiteStore) GetAllEntries() ([]models.JournalEntry, error) {
	return s.queryEntries("SELECT " + entryColumns + " FROM entries ORDER BY day")
}

func (s *SQLiteStore) queryEntries(query string, args ...any) ([]models.JournalEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) DeleteEntry(id string) error {
	res, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry not found: %s", id)
	}
	return nil
}

// GetConfigPath returns the path to the underlying database file.
//
// Concurrency note: SQLiteStore is not safe for concurrent use by multiple
// goroutines without external synchronization, and running multiple thirtyq
// processes against the same path is not supported.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
