package checks

import "time"

type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusSkipped Status = "SKIPPED"
	StatusError   Status = "ERROR"
)

// Outcome is the result of running one check instance. Created at execution
// end and immutable afterwards.
type Outcome struct {
	Check   string `json:"check"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	// Output is the check's captured stdout+stderr, interleaved in arrival
	// order. Printed under the check's name when the check did not pass.
	Output   string        `json:"output,omitempty"`
	Files    int           `json:"files,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Failed reports whether the outcome counts against the run verdict.
// Both clean lint failures and invocation errors fail the run; skips do not.
func (o Outcome) Failed() bool {
	return o.Status == StatusFail || o.Status == StatusError
}

func PassOutcome(check string) Outcome {
	return Outcome{Check: check, Status: StatusPass}
}

func PassOutcomeWithMessage(check, message string) Outcome {
	return Outcome{Check: check, Status: StatusPass, Message: message}
}

func FailOutcome(check, output string) Outcome {
	return Outcome{Check: check, Status: StatusFail, Output: output}
}

// SkipOutcome records a check that contributed no work: no matching files,
// or disabled in the current mode. Skips are listed for transparency but are
// excluded from the failure tally.
func SkipOutcome(check, reason string) Outcome {
	return Outcome{Check: check, Status: StatusSkipped, Message: reason}
}

// ErrorOutcome records a check whose process or callable could not be started
// or crashed unexpectedly, distinct from a clean lint failure.
func ErrorOutcome(check string, err error) Outcome {
	o := Outcome{Check: check, Status: StatusError}
	if err != nil {
		o.Message = err.Error()
	}
	return o
}
