package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ebrowne/thirtyq/internal/models"
)

// Store is the on-disk document format of the JSON provider.
type Store struct {
	Version  int                            `json:"version"`
	Settings Settings                       `json:"settings"`
	Entries  map[string]models.JournalEntry `json:"entries"` // keyed by entry ID
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Entries: make(map[string]models.JournalEntry),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'thirtyq init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Entries == nil {
		s.store.Entries = make(map[string]models.JournalEntry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) SaveEntry(entry models.JournalEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Entries[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) GetEntry(id string) (models.JournalEntry, error) {
	if s.store == nil {
		return models.JournalEntry{}, fmt.Errorf("storage not loaded")
	}
	entry, ok := s.store.Entries[id]
	if !ok {
		return models.JournalEntry{}, fmt.Errorf("entry not found: %s", id)
	}
	return entry, nil
}

func (s *JSONStore) GetEntryForDay(day string) (models.JournalEntry, bool, error) {
	if s.store == nil {
		return models.JournalEntry{}, false, fmt.Errorf("storage not loaded")
	}

	var found models.JournalEntry
	var ok bool
	for _, entry := range s.store.Entries {
		if entry.Day != day {
			continue
		}
		// Prefer the most recently updated entry should duplicates exist.
		if !ok || entry.UpdatedAt.After(found.UpdatedAt) {
			found = entry
			ok = true
		}
	}
	return found, ok, nil
}

func (s *JSONStore) GetEntriesByQuestion(questionID int) ([]models.JournalEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var entries []models.JournalEntry
	for _, entry := range s.store.Entries {
		if entry.QuestionID == questionID {
			entries = append(entries, entry)
		}
	}
	sortByDay(entries)
	return entries, nil
}

// GetEntriesInRange returns entries with fromDay <= day < toDay, sorted by day.
func (s *JSONStore) GetEntriesInRange(fromDay, toDay string) ([]models.JournalEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	var entries []models.JournalEntry
	for _, entry := range s.store.Entries {
		if entry.Day >= fromDay && entry.Day < toDay {
			entries = append(entries, entry)
		}
	}
	sortByDay(entries)
	return entries, nil
}

func (s *JSONStore) GetAllEntries() ([]models.JournalEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.JournalEntry, 0, len(s.store.Entries))
	for _, entry := range s.store.Entries {
		entries = append(entries, entry)
	}
	sortByDay(entries)
	return entries, nil
}

func (s *JSONStore) DeleteEntry(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, ok := s.store.Entries[id]; !ok {
		return fmt.Errorf("entry not found: %s", id)
	}
	delete(s.store.Entries, id)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func sortByDay(entries []models.JournalEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return entries[i].Day < entries[j].Day
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}
