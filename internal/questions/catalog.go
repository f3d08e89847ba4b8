// Package questions holds the built-in 30-question catalog and the ordering
// policy that guarantees callers always see exactly 30 questions regardless
// of how the user has customized the order or text.
package questions

import (
	"encoding/json"
	"fmt"
	"sort"

	_ "embed"

	"github.com/ebrowne/thirtyq/internal/constants"
	"github.com/ebrowne/thirtyq/internal/models"
)

//go:embed questions.json
var catalogJSON []byte

// Catalog parses the bundled question set. The file ships inside the binary,
// so a decode failure indicates a broken build; callers treat it as a
// degraded (empty) catalog rather than a crash.
func Catalog() ([]models.Question, error) {
	var file models.QuestionsFile
	if err := json.Unmarshal(catalogJSON, &file); err != nil {
		return nil, fmt.Errorf("failed to parse question catalog: %w", err)
	}
	if len(file.Questions) != constants.CycleLengthDays {
		return nil, fmt.Errorf("question catalog has %d questions, expected %d",
			len(file.Questions), constants.CycleLengthDays)
	}
	return file.Questions, nil
}

// Ordered applies the user's custom order and text overrides to the catalog.
//
// The result always has exactly len(catalog) questions with each ID at most
// once: IDs in the order that are out of range, duplicated, or unknown are
// dropped, then any missing questions are appended in ascending ID order.
// This keeps day-number indexing safe no matter what order value was
// persisted.
func Ordered(catalog []models.Question, order []int, overrides map[int]string) []models.Question {
	byID := make(map[int]models.Question, len(catalog))
	for _, q := range catalog {
		byID[q.ID] = q
	}

	result := make([]models.Question, 0, len(catalog))
	seen := make(map[int]bool, len(catalog))

	for _, id := range order {
		q, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		result = append(result, q)
		seen[id] = true
		if len(result) == len(catalog) {
			break
		}
	}

	// Fill gaps with the lowest-ID questions not already placed.
	if len(result) < len(catalog) {
		missing := make([]int, 0, len(catalog)-len(result))
		for id := range byID {
			if !seen[id] {
				missing = append(missing, id)
			}
		}
		sort.Ints(missing)
		for _, id := range missing {
			result = append(result, byID[id])
		}
	}

	for i := range result {
		if text, ok := overrides[result[i].ID]; ok && text != "" {
			result[i].Text = text
		}
	}

	return result
}

// DefaultOrder returns the ascending 1..30 ordering.
func DefaultOrder() []int {
	order := make([]int, constants.CycleLengthDays)
	for i := range order {
		order[i] = i + 1
	}
	return order
}

// OrderIDs extracts the ID permutation from an ordered question list, for
// persisting after a reorder.
func OrderIDs(ordered []models.Question) []int {
	ids := make([]int, len(ordered))
	for i, q := range ordered {
		ids[i] = q.ID
	}
	return ids
}
