package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ebrowne/thirtyq/internal/models"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID          string `json:"id"`
	Day         string `json:"day"`
	DayNumber   int    `json:"day_number"`
	CycleNumber int    `json:"cycle_number"`
	QuestionID  int    `json:"question_id"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func ToJSON(entries []models.JournalEntry, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(entries),
	}

	for _, e := range entries {
		export.Entries = append(export.Entries, jsonEntry{
			ID:          e.ID,
			Day:         e.Day,
			DayNumber:   e.DayNumber,
			CycleNumber: e.CycleNumber,
			QuestionID:  e.QuestionID,
			Question:    e.QuestionText,
			Answer:      e.Answer,
			CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
