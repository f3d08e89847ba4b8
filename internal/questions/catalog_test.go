package questions

import (
	"testing"

	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/models"
)

func TestCatalogHasThirtyUniqueQuestions(t *testing.T) {
	catalog, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}

	if len(catalog) != constants.CycleLengthDays {
		t.Fatalf("catalog has %d questions, want %d", len(catalog), constants.CycleLengthDays)
	}

	seen := make(map[int]bool)
	for _, q := range catalog {
		if q.ID < 1 || q.ID > constants.CycleLengthDays {
			t.Errorf("question ID %d out of range", q.ID)
		}
		if seen[q.ID] {
			t.Errorf("duplicate question ID %d", q.ID)
		}
		seen[q.ID] = true
		if q.Text == "" {
			t.Errorf("question %d has empty text", q.ID)
		}
		if q.Category == "" {
			t.Errorf("question %d has empty category", q.ID)
		}
	}
}

func assertValidOrdering(t *testing.T, ordered []models.Question) {
	t.Helper()
	if len(ordered) != constants.CycleLengthDays {
		t.Fatalf("ordering has %d questions, want %d", len(ordered), constants.CycleLengthDays)
	}
	seen := make(map[int]bool)
	for _, q := range ordered {
		if seen[q.ID] {
			t.Fatalf("ordering contains ID %d twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestOrderedWithDefaultOrder(t *testing.T) {
	catalog, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}

	ordered := Ordered(catalog, DefaultOrder(), nil)
	assertValidOrdering(t, ordered)

	for i, q := range ordered {
		if q.ID != i+1 {
			t.Errorf("position %d: got question %d, want %d", i, q.ID, i+1)
		}
	}
}

func TestOrderedRobustToBadInput(t *testing.T) {
	catalog, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}

	tests := []struct {
		name  string
		order []int
	}{
		{"nil order", nil},
		{"empty order", []int{}},
		{"partial order", []int{5, 3, 12}},
		{"duplicates", []int{1, 1, 2, 2, 3, 3}},
		{"out of range", []int{0, -4, 31, 999, 7}},
		{"reversed", []int{30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{"too long", append(DefaultOrder(), 1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidOrdering(t, Ordered(catalog, tt.order, nil))
		})
	}
}

func TestOrderedFillsGapsAscending(t *testing.T) {
	catalog, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}

	ordered := Ordered(catalog, []int{10, 20, 30}, nil)
	assertValidOrdering(t, ordered)

	if ordered[0].ID != 10 || ordered[1].ID != 20 || ordered[2].ID != 30 {
		t.Errorf("custom prefix not preserved: got %d,%d,%d", ordered[0].ID, ordered[1].ID, ordered[2].ID)
	}
	// Remainder is the lowest missing IDs in ascending order.
	if ordered[3].ID != 1 || ordered[4].ID != 2 {
		t.Errorf("gap fill not ascending: got %d,%d", ordered[3].ID, ordered[4].ID)
	}
}

func TestOrderedAppliesTextOverrides(t *testing.T) {
	catalog, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}

	overrides := map[int]string{
		7:  "What scares you the most right now?",
		15: "", // empty override is ignored
	}

	ordered := Ordered(catalog, DefaultOrder(), overrides)
	if ordered[6].Text != overrides[7] {
		t.Errorf("question 7 text = %q, want override", ordered[6].Text)
	}
	if ordered[14].Text == "" {
		t.Error("empty override should not blank out question 15")
	}
	if ordered[6].Category != catalog[6].Category {
		t.Error("override must not change category")
	}
}

func TestOrderIDsRoundTrip(t *testing.T) {
	catalog, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}

	order := []int{3, 1, 2}
	ordered := Ordered(catalog, order, nil)
	ids := OrderIDs(ordered)

	if len(ids) != constants.CycleLengthDays {
		t.Fatalf("OrderIDs returned %d IDs, want %d", len(ids), constants.CycleLengthDays)
	}
	if ids[0] != 3 || ids[1] != 1 || ids[2] != 2 {
		t.Errorf("prefix lost in round trip: %v", ids[:3])
	}

	// Feeding the extracted order back in reproduces the same ordering.
	again := Ordered(catalog, ids, nil)
	for i := range ordered {
		if again[i].ID != ordered[i].ID {
			t.Fatalf("round trip diverged at position %d: %d vs %d", i, again[i].ID, ordered[i].ID)
		}
	}
}
