package checks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lintcrew/internal/fileset"
)

// RunContext carries the immutable per-run inputs a check may read.
// It is built once, after classification, and never mutated afterwards,
// so concurrent checks can share it without synchronization.
type RunContext struct {
	Files   *fileset.Classified
	Fix     bool
	Verbose bool
}

// CustomFunc is an in-process check. It receives the shared read-only file
// classification and returns true when the check found violations.
type CustomFunc func(ctx context.Context, rc *RunContext) (failed bool, err error)

// Check describes one unit of lint work: either an external tool invocation
// or an in-process function. Exactly one of Command and Run must be set.
//
// Fix-mode hazard: two fix-capable checks that rewrite overlapping files must
// not both be enabled; the orchestrator does not serialize fix-mode writes.
type Check struct {
	// Name uniquely identifies the check across the registry.
	Name string

	// Description is shown by "checks list".
	Description string

	// Extensions restricts the check to files with these extensions
	// (without the leading dot). Empty means no file-type filter: the
	// check receives the full classified set.
	Extensions []string

	// Exclude holds check-specific exclusion patterns applied on top of
	// the global ones. Patterns are exact paths, directory prefixes, or
	// path.Match globs.
	Exclude []string

	// Command is the base argv of an external tool check.
	Command []string

	// CheckArgs are appended to Command in check mode.
	CheckArgs []string

	// FixArgs are appended to Command in fix mode. A nil slice means the
	// tool cannot fix and the check is skipped entirely under --fix; an
	// empty non-nil slice means fix mode adds no extra arguments.
	FixArgs []string

	// NoTargets suppresses appending matched files to the invocation.
	// Tools that scan the whole tree themselves set this; they are then
	// invoked unconditionally, even when no file matches.
	NoTargets bool

	// SuppressLine, when set, reclassifies a nonzero exit as a pass if it
	// accepts every line of the captured output. This models tools whose
	// exit code conflates "ran successfully" with "found nothing to do".
	SuppressLine func(line string) bool

	// Run is the in-process variant. Custom checks never run in fix mode.
	Run CustomFunc

	// FullOnly marks checks that are resolved only when --full is set.
	FullOnly bool

	// ShardIndex/ShardCount assign this check one deterministic slice of
	// its matched files. A zero count means unsharded.
	ShardIndex int
	ShardCount int
}

// External reports whether the check shells out to a tool.
func (c Check) External() bool { return len(c.Command) > 0 }

// Fixable reports whether the check participates in fix mode.
func (c Check) Fixable() bool { return c.External() && c.FixArgs != nil }

// ModeArgs returns the mode-dependent argument variant.
func (c Check) ModeArgs(fix bool) []string {
	if fix {
		return c.FixArgs
	}
	return c.CheckArgs
}

func (c Check) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("check name must not be empty")
	}
	if c.External() == (c.Run != nil) {
		return fmt.Errorf("check %s: exactly one of Command and Run must be set", c.Name)
	}
	if !c.External() && (c.CheckArgs != nil || c.FixArgs != nil || c.SuppressLine != nil) {
		return fmt.Errorf("check %s: argument and suppression options apply to external checks only", c.Name)
	}
	if c.ShardCount < 0 || c.ShardIndex < 0 || (c.ShardCount > 0 && c.ShardIndex >= c.ShardCount) {
		return fmt.Errorf("check %s: shard %d/%d out of range", c.Name, c.ShardIndex, c.ShardCount)
	}
	for _, ext := range c.Extensions {
		if strings.HasPrefix(ext, ".") || strings.TrimSpace(ext) == "" {
			return fmt.Errorf("check %s: extensions must be bare (got %q)", c.Name, ext)
		}
	}
	return nil
}
