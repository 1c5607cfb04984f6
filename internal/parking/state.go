package parking

import "time"

// TimeLayout is the ISO-8601 local timestamp format used in the
// persisted state record and in alert bodies (no timezone offset).
const TimeLayout = "2006-01-02T15:04:05"

// State is a single observation of the monitored facility. It is a
// value record: constructed once per check cycle and never mutated.
type State struct {
	HasVacancy bool   `json:"hasVacancy"`
	Details    string `json:"details"`
	Timestamp  string `json:"timestamp"`
}

// NewState creates a State stamped with the current local wall clock.
func NewState(hasVacancy bool, details string) State {
	return State{
		HasVacancy: hasVacancy,
		Details:    details,
		Timestamp:  time.Now().Format(TimeLayout),
	}
}
