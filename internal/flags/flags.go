package flags

// Package flags defines canonical CLI flag names shared across the CLI and engine.
// Keeping these as constants helps avoid drift between Cobra flag wiring and other
// code paths that need to reference flags (e.g. help text and error messages).
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Workspace.Root, flags.FlagRoot, ".", "...")
//	arg := "--" + flags.FlagRoot
const (
	// Workspace
	FlagRoot    = "root"
	FlagExclude = "exclude"

	// Checks
	FlagChecks = "checks"
	FlagGroup  = "group"
	FlagFix    = "fix"
	FlagFull   = "full"
	FlagForce  = "force"
	FlagList   = "list"

	// Output
	FlagConsoleFormat       = "console-format"
	FlagConsoleFilterStatus = "console-filter-status"
	FlagReport              = "report"
	FlagOut                 = "out"
	FlagOutFormat           = "out-format"
	FlagEmit                = "emit"
	FlagNoConsole           = "no-console"

	// Runtime
	FlagConcurrency = "concurrency"
	FlagTimeout     = "timeout"
)
