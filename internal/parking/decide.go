package parking

import "fmt"

// Decision is the outcome of comparing the current observation against
// the previous one: either a notification to send, or a suppression
// carrying the reason.
type Decision struct {
	Send    bool
	Subject string
	Body    string
	Reason  string
}

// Decide applies the edge-trigger rule: a notification fires only when
// vacancy appears where there was none before (or on a vacant very
// first observation). It is a pure function; the caller persists state
// and invokes the notifier.
func Decide(current State, previous *State, url string) Decision {
	if !current.HasVacancy {
		return suppress("currently full")
	}
	if previous != nil && previous.HasVacancy {
		return suppress("already notified; vacancy is sustained")
	}
	return Decision{
		Send:    true,
		Subject: "Parking vacancy detected",
		Body:    formatAlert(current, url),
	}
}

func suppress(reason string) Decision {
	return Decision{Reason: reason}
}

// formatAlert builds the human-readable alert body with the facility
// URL, the detection timestamp and the parsed details.
func formatAlert(current State, url string) string {
	return fmt.Sprintf(
		"A parking space appears to be available.\n\nFacility: %s\nDetected: %s\nStatus: %s\n",
		url, current.Timestamp, current.Details,
	)
}
