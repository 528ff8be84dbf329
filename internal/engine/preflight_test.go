package engine

import (
	"strings"
	"testing"

	"lintcrew/internal/checks"
)

func TestPreflight_AllToolsPresent(t *testing.T) {
	plan := []PlannedCheck{
		{Check: checks.Check{Name: "sh-check", Command: []string{"sh"}}, Targets: []string{"a.py"}},
	}
	if err := Preflight(plan); err != nil {
		t.Errorf("Preflight: %v", err)
	}
}

func TestPreflight_ReportsMissingToolsOnce(t *testing.T) {
	plan := []PlannedCheck{
		{Check: checks.Check{Name: "m1", Command: []string{"lintcrew-missing-tool"}}, Targets: []string{"a.py"}},
		{Check: checks.Check{Name: "m2", Command: []string{"lintcrew-missing-tool"}}, Targets: []string{"a.py"}},
		{Check: checks.Check{Name: "ok", Command: []string{"sh"}}, Targets: []string{"a.py"}},
	}
	err := Preflight(plan)
	if err == nil {
		t.Fatal("expected error for missing tool")
	}
	if got := strings.Count(err.Error(), "lintcrew-missing-tool"); got != 1 {
		t.Errorf("missing tool listed %d times, want once: %v", got, err)
	}
}

func TestPreflight_IgnoresSkippedAndCustomChecks(t *testing.T) {
	plan := []PlannedCheck{
		{Check: checks.Check{Name: "skipped", Command: []string{"lintcrew-missing-tool"}}, SkipReason: "no matching files"},
		{Check: checks.Check{Name: "custom", Run: noopCustom}, Targets: []string{"a.py"}},
	}
	if err := Preflight(plan); err != nil {
		t.Errorf("Preflight: %v", err)
	}
}
