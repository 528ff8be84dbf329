package engine

import "lintcrew/internal/checks"

// RunReport is the aggregate of all check outcomes for a single run. It is
// created fresh per invocation and discarded after reporting; the engine is
// stateless across runs.
type RunReport struct {
	Outcomes []checks.Outcome
	Failing  []string
	ExitCode int
}

// Aggregate merges outcomes into the run verdict. The verdict is failure iff
// any outcome is FAIL or ERROR; skipped checks are excluded from the tally.
// Outcome order is preserved from the plan (registration order), so reports
// are reproducible across runs despite concurrent execution.
func Aggregate(outcomes []checks.Outcome) RunReport {
	r := RunReport{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Failed() {
			r.Failing = append(r.Failing, o.Check)
		}
	}
	if len(r.Failing) > 0 {
		r.ExitCode = ExitChecksFailed
	}
	return r
}

// Passed reports the overall verdict.
func (r RunReport) Passed() bool { return len(r.Failing) == 0 }
