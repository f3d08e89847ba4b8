package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ebrowne/thirtyq/internal/models"
)

func sampleEntries() []models.JournalEntry {
	ts := time.Date(2025, time.March, 2, 9, 30, 0, 0, time.UTC)
	return []models.JournalEntry{
		{
			ID:           "e1",
			QuestionID:   3,
			QuestionText: "Who made a positive difference in your life recently?",
			Answer:       "my sister, with a phone call\nthat \"changed\" my week",
			Day:          "2025-03-02",
			DayNumber:    3,
			CycleNumber:  3,
			CreatedAt:    ts,
			UpdatedAt:    ts,
		},
	}
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := ToJSON(sampleEntries(), path); err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}

	var export jsonExport
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if export.Count != 1 || len(export.Entries) != 1 {
		t.Fatalf("export count wrong: %+v", export)
	}
	e := export.Entries[0]
	if e.Day != "2025-03-02" || e.CycleNumber != 3 || e.QuestionID != 3 {
		t.Errorf("entry fields wrong: %+v", e)
	}
	if !strings.Contains(e.Answer, "changed") {
		t.Errorf("answer text lost: %q", e.Answer)
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := ToCSV(sampleEntries(), path); err != nil {
		t.Fatalf("ToCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	row := records[1]
	if row[0] != "2025-03-02" || row[1] != "3" || row[3] != "3" {
		t.Errorf("row fields wrong: %v", row)
	}
	// Newlines and quotes in answers survive CSV quoting.
	if !strings.Contains(row[5], "\"changed\"") {
		t.Errorf("answer text mangled: %q", row[5])
	}
}
