package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"lintcrew/internal/checks"
	"lintcrew/internal/toolrunner"
)

// Scheduler runs planned checks concurrently. All checks are mutually
// independent; the only shared state is the read-only RunContext, which is
// safe for concurrent reads by construction.
type Scheduler struct {
	concurrency int
}

func NewScheduler(concurrency int) (*Scheduler, error) {
	if concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be >= 1, got %d", concurrency)
	}
	return &Scheduler{concurrency: concurrency}, nil
}

// Execute runs every planned check and returns one outcome per plan entry,
// indexed by plan position, so aggregation sees registration order regardless
// of completion order. Each check's invocation is isolated: a crashing check
// becomes an ERROR outcome and never aborts its siblings. Cancelling ctx
// signals in-flight subprocesses to terminate.
func (s *Scheduler) Execute(ctx context.Context, plan []PlannedCheck, rc *checks.RunContext) []checks.Outcome {
	outcomes := make([]checks.Outcome, len(plan))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, pc := range plan {
		g.Go(func() error {
			outcomes[i] = s.runOne(ctx, pc, rc)
			return nil
		})
	}
	// Workers never return errors; failures are recorded as outcomes.
	_ = g.Wait()

	return outcomes
}

func (s *Scheduler) runOne(ctx context.Context, pc PlannedCheck, rc *checks.RunContext) (out checks.Outcome) {
	name := pc.Check.Name

	if !pc.Invoked() {
		return checks.SkipOutcome(name, pc.SkipReason)
	}
	if err := ctx.Err(); err != nil {
		return checks.ErrorOutcome(name, fmt.Errorf("run canceled: %w", err))
	}

	// A panicking custom check is an invocation error, not a crash of the
	// whole run.
	defer func() {
		if r := recover(); r != nil {
			out = checks.ErrorOutcome(name, fmt.Errorf("check panicked: %v", r))
		}
	}()

	if pc.Check.External() {
		return toolrunner.Run(ctx, toolrunner.Invocation{
			Check:    name,
			Argv:     toolrunner.BuildArgv(pc.Check, rc.Fix, pc.Targets),
			Dir:      rc.Files.Root(),
			Files:    len(pc.Targets),
			Suppress: pc.Check.SuppressLine,
		})
	}

	start := time.Now()
	failed, err := pc.Check.Run(ctx, rc)
	duration := time.Since(start)

	switch {
	case err != nil:
		out = checks.ErrorOutcome(name, err)
	case failed:
		out = checks.FailOutcome(name, "")
		out.Message = "check reported violations"
	default:
		out = checks.PassOutcome(name)
	}
	out.Duration = duration
	out.Files = len(pc.Targets)
	return out
}
