package models

import "time"

// JournalEntry is a single day's answer to one of the 30 recurring questions.
// The question text is snapshotted at answer time so later edits to the
// catalog don't rewrite history.
type JournalEntry struct {
	ID           string    `json:"id"`
	QuestionID   int       `json:"question_id"` // 1-30
	QuestionText string    `json:"question_text"`
	Answer       string    `json:"answer"`
	Day          string    `json:"day"`          // YYYY-MM-DD format
	DayNumber    int       `json:"day_number"`   // position within the cycle (1-30)
	CycleNumber  int       `json:"cycle_number"` // which pass through the question set (1+)
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
