package engine

import (
	"lintcrew/internal/checks"
	"lintcrew/internal/config"
	"lintcrew/internal/fileset"
)

// PlannedCheck pairs a resolved check with the target file slice it will
// receive this run.
type PlannedCheck struct {
	Check   checks.Check
	Targets []string

	// SkipReason, when non-empty, means the check is not invoked this run
	// and contributes a SKIPPED outcome instead.
	SkipReason string
}

// Invoked reports whether the planned check will actually execute.
func (p PlannedCheck) Invoked() bool { return p.SkipReason == "" }

// BuildPlan computes each selected check's target list from the shared
// classification and decides skips up front: fix-mode gating, check-specific
// exclusions, sharding, and empty target lists.
func BuildPlan(cfg *config.Config, classified *fileset.Classified, selected []checks.Check) []PlannedCheck {
	plan := make([]PlannedCheck, 0, len(selected))
	for _, c := range selected {
		pc := PlannedCheck{Check: c}

		if cfg.Checks.Fix {
			switch {
			case !c.External():
				pc.SkipReason = "custom checks do not run in fix mode"
			case !c.Fixable():
				pc.SkipReason = "tool has no fix mode"
			}
			if pc.SkipReason != "" {
				plan = append(plan, pc)
				continue
			}
		}

		targets := classified.WithExtensions(c.Extensions)
		if len(c.Exclude) > 0 {
			kept := targets[:0]
			for _, t := range targets {
				if !fileset.MatchesAny(c.Exclude, t) {
					kept = append(kept, t)
				}
			}
			targets = kept
		}
		targets = fileset.Shard(targets, c.ShardIndex, c.ShardCount)
		pc.Targets = targets

		// An empty target list skips the check rather than invoking the
		// tool with zero arguments; NoTargets tools scan the tree
		// themselves and run unconditionally. Custom checks receive the
		// whole classification, so only a declared file-type filter with
		// no matches skips them.
		if len(targets) == 0 {
			if c.External() && !c.NoTargets {
				pc.SkipReason = "no matching files"
			} else if !c.External() && len(c.Extensions) > 0 {
				pc.SkipReason = "no matching files"
			}
		}

		plan = append(plan, pc)
	}
	return plan
}
