package models

// Question is one of the 30 recurring reflection prompts.
type Question struct {
	ID       int    `json:"id"` // 1-30
	Text     string `json:"text"`
	Category string `json:"category"`
}

// QuestionsFile is the shape of the bundled question catalog.
type QuestionsFile struct {
	Questions []Question `json:"questions"`
}
