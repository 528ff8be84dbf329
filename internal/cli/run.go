package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lintcrew/internal/config"
	"lintcrew/internal/engine"
	"lintcrew/internal/flags"
)

var cfg = config.New()

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run checks against a working tree",
	Long: `Run the registered checks against the tracked files of a working tree.

Files are classified by extension once per run; each check receives the slice
of the tree matching its declared file types, minus global and per-check
exclusions. Independent checks run in parallel, bounded by --concurrency.

Configuration:
	Global exclusion patterns and group definitions can be pinned in a
	` + config.ProjectFileName + ` file at the workspace root. Environment variables
	prefixed LINTCREW_ override project-file settings.

Modes:
	Check mode (default) only reports violations. With --fix, fix-capable
	tools rewrite files in place; checks without fix arguments are skipped.

Exit codes:
	0 = all checks passed (or were skipped)
	1 = at least one check failed or errored
	2 = fatal error (configuration problem, run did not start)

Examples:
  # Everything, current directory
  lintcrew run

  # Only the Python checks, fixing what the tools can fix
  lintcrew run --group backend --fix

  # A named subset, machine-readable stream on stdout
  lintcrew run --checks flake8_1,flake8_2,mypy --no-console --emit ndjson
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(engine.ExitFatal)
		}

		pf, err := config.LoadProjectFile(cfg.Workspace.Root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(engine.ExitFatal)
		}
		pf.Apply(cfg, cmd.Flags().Changed(flags.FlagConcurrency))

		eng := engine.NewEngine()
		os.Exit(eng.Run(context.Background(), cfg))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Workspace
	runCmd.Flags().StringVar(&cfg.Workspace.Root, flags.FlagRoot, ".", "Working tree to check")
	runCmd.Flags().StringSliceVar(&cfg.Workspace.Exclude, flags.FlagExclude, nil, "Exclusion pattern(s): exact path, directory prefix, or glob (repeatable; comma-separated accepted)")

	// Checks
	runCmd.Flags().StringVar(&cfg.Checks.Selector, flags.FlagChecks, "", "Comma-separated check names (empty = all checks)")
	runCmd.Flags().StringVar(&cfg.Checks.Group, flags.FlagGroup, "", "Restrict to checks covering the named file group (e.g. backend, frontend, scripts)")
	runCmd.Flags().BoolVar(&cfg.Checks.Fix, flags.FlagFix, false, "Fix mode: let fix-capable tools rewrite files in place")
	runCmd.Flags().BoolVar(&cfg.Checks.Full, flags.FlagFull, false, "Also run checks registered as full-only (slow or strict)")
	runCmd.Flags().BoolVar(&cfg.Checks.Force, flags.FlagForce, false, "Skip the tool-availability preflight; missing binaries become per-check errors")
	runCmd.Flags().BoolVar(&cfg.Checks.List, flags.FlagList, false, "Print the resolved execution plan without running anything")

	// Output
	runCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	runCmd.Flags().StringSliceVar(&cfg.Output.ConsoleFilterStatus, flags.FlagConsoleFilterStatus, nil, "Filter console output by status (PASS, FAIL, SKIPPED, ERROR). Comma-separated.")
	runCmd.Flags().StringVar(&cfg.Output.Report, flags.FlagReport, "", "Write a Markdown report to this path")
	runCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	runCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	runCmd.Flags().StringSliceVar(&cfg.Output.Emit, flags.FlagEmit, nil, "Emit additional structured stream to stdout: json|ndjson (repeatable; comma-separated accepted)")
	runCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --emit/--out/--report)")

	// Runtime
	runCmd.Flags().IntVar(&cfg.Runtime.Concurrency, flags.FlagConcurrency, cfg.Runtime.Concurrency, "Concurrent checks (default: available parallelism)")
	runCmd.Flags().DurationVar(&cfg.Runtime.Timeout, flags.FlagTimeout, cfg.Runtime.Timeout, "Global timeout (default: 15m)")
}
