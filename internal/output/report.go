package output

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"lintcrew/internal/checks"
)

// ReportSink accumulates the run and writes a Markdown report on Close.
type ReportSink struct {
	path         string
	file         *os.File
	mu           sync.Mutex
	outcomes     []checks.Outcome
	exitCode     int
	haveExitCode bool
	started      time.Time
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{
		path:    path,
		file:    f,
		started: time.Now(),
	}, nil
}

func (s *ReportSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch t := v.(type) {
	case checks.Outcome:
		s.outcomes = append(s.outcomes, t)
	case Event:
		if t.Type == "run.finished" {
			s.exitCode = t.ExitCode
			s.haveExitCode = true
		}
	}
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteString("# lintcrew run report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format(time.RFC3339))

	counts := map[checks.Status]int{}
	var failing []string
	for _, o := range s.outcomes {
		counts[o.Status]++
		if o.Failed() {
			failing = append(failing, o.Check)
		}
	}

	b.WriteString("## Summary\n\n")
	if s.haveExitCode {
		fmt.Fprintf(&b, "Exit code: %d\n\n", s.exitCode)
	}
	b.WriteString("| Status | Count |\n|--------|-------|\n")
	for _, st := range []checks.Status{checks.StatusPass, checks.StatusFail, checks.StatusError, checks.StatusSkipped} {
		fmt.Fprintf(&b, "| %s | %d |\n", st, counts[st])
	}
	b.WriteString("\n")

	if len(failing) > 0 {
		b.WriteString("## Failing checks\n\n")
		for _, name := range failing {
			fmt.Fprintf(&b, "- %s\n", name)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Checks\n\n")
	b.WriteString("| Check | Status | Files | Duration | Message |\n")
	b.WriteString("|-------|--------|-------|----------|---------|\n")
	for _, o := range s.outcomes {
		msg := strings.ReplaceAll(o.Message, "|", "\\|")
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s |\n",
			o.Check, o.Status, o.Files, o.Duration.Round(time.Millisecond), msg)
	}
	b.WriteString("\n")

	for _, o := range s.outcomes {
		if !o.Failed() || strings.TrimSpace(o.Output) == "" {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n```\n%s\n```\n\n", o.Check, strings.TrimRight(o.Output, "\n"))
	}

	_, err := s.file.WriteString(b.String())
	if closeErr := s.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
