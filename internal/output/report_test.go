package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lintcrew/internal/checks"
)

func TestReportSink_WritesMarkdownOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	s, err := NewReportSink(path)
	if err != nil {
		t.Fatalf("NewReportSink: %v", err)
	}

	_ = s.Write(checks.PassOutcome("black"))
	_ = s.Write(checks.FailOutcome("flake8", "a.py:1:1: E501 line too long\n"))
	_ = s.Write(checks.SkipOutcome("eslint", "no matching files"))
	_ = s.Write(Event{Type: "run.finished", Failing: []string{"flake8"}, ExitCode: 1})
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	report := string(data)

	for _, want := range []string{
		"# lintcrew run report",
		"Exit code: 1",
		"| PASS | 1 |",
		"| FAIL | 1 |",
		"| SKIPPED | 1 |",
		"## Failing checks",
		"- flake8",
		"| black | PASS |",
		"### flake8",
		"a.py:1:1: E501 line too long",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}

	// Passing checks never get an output section.
	if strings.Contains(report, "### black") {
		t.Error("report has an output section for a passing check")
	}
}

func TestNewReportSink_RequiresPath(t *testing.T) {
	if _, err := NewReportSink(""); err == nil {
		t.Error("expected error for empty path")
	}
}
