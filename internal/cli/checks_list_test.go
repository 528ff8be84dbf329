package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"lintcrew/internal/checks"
)

func registerTestCheck(c checks.Check) {
	defer func() {
		// Already registered from an earlier test run; ignore.
		_ = recover()
	}()
	checks.Register(c)
}

func TestPrintCheck(t *testing.T) {
	tests := []struct {
		name           string
		check          checks.Check
		expectedOutput []string
		notExpected    []string
	}{
		{
			name: "external check",
			check: checks.Check{
				Name:        "cli-fmt",
				Description: "Formats files.",
				Command:     []string{"black"},
				CheckArgs:   []string{"--check"},
				FixArgs:     []string{},
				Extensions:  []string{"py", "pyi"},
			},
			expectedOutput: []string{
				"CHECK: cli-fmt",
				"Formats files.",
				"Tool:       black",
				"Extensions: py, pyi",
				"Fix mode:   supported",
			},
			notExpected: []string{
				"Shard:",
				"Enabled:",
			},
		},
		{
			name: "custom full-only check",
			check: checks.Check{
				Name:        "cli-deep",
				Description: "Slow custom scan.",
				Run:         func(ctx context.Context, rc *checks.RunContext) (bool, error) { return false, nil },
				FullOnly:    true,
			},
			expectedOutput: []string{
				"CHECK: cli-deep",
				"Tool:       (in-process)",
				"Extensions: (all tracked files)",
				"Enabled:    only with --full",
			},
			notExpected: []string{
				"Fix mode:",
			},
		},
		{
			name: "sharded check",
			check: checks.Check{
				Name:        "cli-shard",
				Description: "Second of two shards.",
				Command:     []string{"flake8"},
				Extensions:  []string{"py"},
				ShardIndex:  1,
				ShardCount:  2,
			},
			expectedOutput: []string{
				"Shard:      2 of 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			printCheck(buf, tt.check)
			output := buf.String()

			for _, exp := range tt.expectedOutput {
				if !strings.Contains(output, exp) {
					t.Errorf("Expected output to contain %q, but it didn't.\nOutput:\n%s", exp, output)
				}
			}
			for _, notExp := range tt.notExpected {
				if strings.Contains(output, notExp) {
					t.Errorf("Expected output NOT to contain %q, but it did.\nOutput:\n%s", notExp, output)
				}
			}
		})
	}
}

func TestChecksListCmd(t *testing.T) {
	registerTestCheck(checks.Check{
		Name:        "cli-test-list",
		Description: "A check for the list command test.",
		Command:     []string{"true"},
	})

	tests := []struct {
		name           string
		quiet          bool
		expectedOutput []string
		notExpected    []string
	}{
		{
			name:  "default output",
			quiet: false,
			expectedOutput: []string{
				"----------------------------------------",
				"CHECK: cli-test-list",
				"A check for the list command test.",
			},
		},
		{
			name:  "quiet output",
			quiet: true,
			expectedOutput: []string{
				"cli-test-list",
			},
			notExpected: []string{
				"A check for the list command test.",
				"----------------------------------------",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checksListQuiet = tt.quiet
			defer func() { checksListQuiet = false }()

			buf := new(bytes.Buffer)
			checksListCmd.SetOut(buf)

			if err := checksListCmd.RunE(checksListCmd, []string{}); err != nil {
				t.Fatalf("RunE() error = %v", err)
			}

			output := buf.String()
			for _, exp := range tt.expectedOutput {
				if !strings.Contains(output, exp) {
					t.Errorf("Expected output to contain %q, but it didn't.\nOutput:\n%s", exp, output)
				}
			}
			for _, notExp := range tt.notExpected {
				if strings.Contains(output, notExp) {
					t.Errorf("Expected output NOT to contain %q, but it did.\nOutput:\n%s", notExp, output)
				}
			}
		})
	}
}

func TestChecksShowCmd(t *testing.T) {
	registerTestCheck(checks.Check{
		Name:        "cli-test-show",
		Description: "A check for the show command test.",
		Command:     []string{"true"},
	})

	buf := new(bytes.Buffer)
	checksShowCmd.SetOut(buf)
	if err := checksShowCmd.RunE(checksShowCmd, []string{"cli-test-show"}); err != nil {
		t.Fatalf("RunE() error = %v", err)
	}
	output := buf.String()
	for _, exp := range []string{"CHECK: cli-test-show", "A check for the show command test."} {
		if !strings.Contains(output, exp) {
			t.Errorf("Expected output to contain %q, but it didn't.\nOutput:\n%s", exp, output)
		}
	}

	if err := checksShowCmd.RunE(checksShowCmd, []string{"no-such-check"}); err == nil {
		t.Error("Expected error for unknown check, got nil")
	}
}
