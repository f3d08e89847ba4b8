package storage

import "github.com/ebrowne/thirtyq/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Entries
	SaveEntry(models.JournalEntry) error
	GetEntry(id string) (models.JournalEntry, error)
	GetEntryForDay(day string) (models.JournalEntry, bool, error)
	GetEntriesByQuestion(questionID int) ([]models.JournalEntry, error)
	GetEntriesInRange(fromDay, toDay string) ([]models.JournalEntry, error)
	GetAllEntries() ([]models.JournalEntry, error)
	DeleteEntry(id string) error

	// Utils
	GetConfigPath() string
}
