package storage

// Settings is the application's persisted configuration. StartDate anchors
// all day/cycle numbering and is set once at init; QuestionOrder and
// QuestionOverrides capture the user's catalog customization.
type Settings struct {
	StartDate         string         `json:"start_date"` // YYYY-MM-DD
	PasscodeEnabled   bool           `json:"passcode_enabled"`
	Passcode          string         `json:"passcode,omitempty"`
	QuestionOrder     []int          `json:"question_order,omitempty"`
	QuestionOverrides map[int]string `json:"question_overrides,omitempty"`
	LastJournalDay    string         `json:"last_journal_day,omitempty"` // YYYY-MM-DD
}
