// Package toolrunner executes external tool checks as subprocesses and maps
// process results onto check outcomes. The process's stdout/stderr and exit
// code are the entire contract with the tool.
package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"lintcrew/internal/checks"
)

// Invocation is one fully assembled external tool run.
type Invocation struct {
	Check    string
	Argv     []string
	Dir      string
	Files    int
	Suppress func(line string) bool
}

// BuildArgv assembles the invocation argument vector:
// baseCommand ++ modeArgs ++ targets (targets omitted for NoTargets checks).
func BuildArgv(c checks.Check, fix bool, targets []string) []string {
	modeArgs := c.ModeArgs(fix)
	argv := make([]string, 0, len(c.Command)+len(modeArgs)+len(targets))
	argv = append(argv, c.Command...)
	argv = append(argv, modeArgs...)
	if !c.NoTargets {
		argv = append(argv, targets...)
	}
	return argv
}

// Run executes the invocation with the working directory set to the project
// root, capturing interleaved stdout+stderr. Exit status mapping:
//   - zero exit: pass
//   - nonzero exit: fail, unless the suppression predicate accepts every
//     line of the captured output (a nonzero-but-benign exit)
//   - process could not be started, or was killed by cancellation: error
func Run(ctx context.Context, inv Invocation) checks.Outcome {
	start := time.Now()
	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...)
	cmd.Dir = inv.Dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	duration := time.Since(start)
	output := buf.String()

	slog.Debug("tool finished",
		slog.String("check", inv.Check),
		slog.String("command", inv.Argv[0]),
		slog.Duration("duration", duration),
		slog.Bool("clean_exit", err == nil),
	)

	finish := func(o checks.Outcome) checks.Outcome {
		o.Duration = duration
		o.Files = inv.Files
		return o
	}

	if err == nil {
		return finish(checks.PassOutcome(inv.Check))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		if inv.Suppress != nil && allSuppressed(output, inv.Suppress) {
			o := checks.PassOutcomeWithMessage(inv.Check, "nonzero exit with benign output")
			o.Output = output
			return finish(o)
		}
		return finish(checks.FailOutcome(inv.Check, output))
	}

	o := checks.ErrorOutcome(inv.Check, err)
	o.Output = output
	return finish(o)
}

func allSuppressed(output string, accept func(string) bool) bool {
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !accept(line) {
			return false
		}
	}
	return true
}
