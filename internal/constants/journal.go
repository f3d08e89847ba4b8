package constants

import "time"

const (
	// CycleLengthDays is the number of questions in the rotation. Day and
	// cycle numbering, the question catalog, and the ordering policy all
	// assume this value.
	CycleLengthDays = 30

	// DayFormat is the canonical calendar-day key used throughout storage.
	DayFormat = "2006-01-02"

	// AutosaveDelay is the quiet interval after the last edit before a
	// pending answer is persisted.
	AutosaveDelay = time.Second
)

// Settings keys used by the SQLite provider's key/value table.
const (
	SettingStartDate         = "start_date"
	SettingPasscodeEnabled   = "passcode_enabled"
	SettingPasscode          = "passcode"
	SettingQuestionOrder     = "question_order"
	SettingQuestionOverrides = "question_overrides"
	SettingLastJournalDay    = "last_journal_day"
)
