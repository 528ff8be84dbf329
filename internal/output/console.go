package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"

	"lintcrew/internal/checks"
)

type ConsoleSink struct {
	writer          io.Writer
	format          string // "text", "json", "ndjson"
	mu              sync.Mutex
	outcomes        []checks.Outcome // For JSON array output
	allowedStatuses map[string]bool
	started         time.Time
}

func NewConsoleSink(w io.Writer, format string, filterStatuses []string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}

	s := &ConsoleSink{
		writer:  w,
		format:  format,
		started: time.Now(),
	}

	if len(filterStatuses) > 0 {
		s.allowedStatuses = make(map[string]bool)
		for _, st := range filterStatuses {
			s.allowedStatuses[strings.ToUpper(st)] = true
		}
	}

	return s
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(v)
}

func (s *ConsoleSink) writeLocked(v any) error {
	// Apply filtering if configured
	if len(s.allowedStatuses) > 0 {
		if o, ok := v.(checks.Outcome); ok {
			if !s.allowedStatuses[string(o.Status)] {
				return nil
			}
		}
	}

	switch s.format {
	case "json":
		o, ok := v.(checks.Outcome)
		if !ok {
			// Ignore non-outcome events in JSON console mode.
			return nil
		}
		s.outcomes = append(s.outcomes, o)
		return nil
	case "ndjson":
		encoder := json.NewEncoder(s.writer)
		switch t := v.(type) {
		case Event:
			if err := encoder.Encode(t); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		case checks.Outcome:
			if err := encoder.Encode(eventFromOutcome(t)); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		default:
			return nil
		}
	case "text":
		switch t := v.(type) {
		case checks.Outcome:
			return s.writeTextOutcome(t)
		case Event:
			if t.Type == "run.finished" {
				return s.writeTextSummary(t)
			}
			return nil
		default:
			return nil
		}
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) writeTextOutcome(o checks.Outcome) error {
	tag := string(o.Status)
	switch o.Status {
	case checks.StatusPass:
		tag = color.GreenString(tag)
	case checks.StatusFail, checks.StatusError:
		tag = color.RedString(tag)
	case checks.StatusSkipped:
		tag = color.YellowString(tag)
	}
	if _, err := fmt.Fprintf(s.writer, "[%s] %s", tag, o.Check); err != nil {
		return err
	}
	if o.Duration > 0 {
		if _, err := fmt.Fprintf(s.writer, " (%s)", o.Duration.Round(time.Millisecond)); err != nil {
			return err
		}
	}
	if o.Message != "" {
		if _, err := fmt.Fprintf(s.writer, " - %s", o.Message); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(s.writer); err != nil {
		return err
	}
	// Each failing check's captured output is printed under its name.
	if o.Failed() && strings.TrimSpace(o.Output) != "" {
		for _, line := range strings.Split(strings.TrimRight(o.Output, "\n"), "\n") {
			if _, err := fmt.Fprintf(s.writer, "  %s\n", line); err != nil {
				return err
			}
		}
	}
	return flushIfPossible(s.writer)
}

func (s *ConsoleSink) writeTextSummary(e Event) error {
	elapsed := time.Since(s.started).Round(time.Millisecond)
	if len(e.Failing) > 0 {
		summary := color.RedString("FAILED (%d): %s", len(e.Failing), strings.Join(e.Failing, ", "))
		if _, err := fmt.Fprintf(s.writer, "%s (%s)\n", summary, elapsed); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(s.writer, "%s (%s)\n", color.GreenString("OK"), elapsed); err != nil {
			return err
		}
	}
	return flushIfPossible(s.writer)
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.outcomes); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	}
	if s.format != "text" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}
