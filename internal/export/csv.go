package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/ebrowne/thirtyq/internal/models"
)

func ToCSV(entries []models.JournalEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Day", "Cycle", "Day of Cycle", "Question ID", "Question", "Answer", "Created", "Updated"}); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			e.Day,
			fmt.Sprintf("%d", e.CycleNumber),
			fmt.Sprintf("%d", e.DayNumber),
			fmt.Sprintf("%d", e.QuestionID),
			e.QuestionText,
			e.Answer,
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
