package output

import "lintcrew/internal/checks"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - run.started
// - check.finished
// - run.finished
//
// JSON mode remains an aggregate of checks.Outcome values.
type Event struct {
	Type string `json:"type"`
	*checks.Outcome
	Checks     int      `json:"checks,omitempty"`
	TotalFiles int      `json:"total_files,omitempty"`
	Failing    []string `json:"failing,omitempty"`
	ExitCode   int      `json:"exit_code,omitempty"`
}

func eventFromOutcome(o checks.Outcome) Event {
	return Event{Type: "check.finished", Outcome: &o}
}
