package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lintcrew",
	Short: "Run a project's lint and static-check suite over the working tree",
	Long: `lintcrew classifies the tracked files of a working tree by language and runs
the applicable lint and static-analysis checks against them in parallel.

Checks wrap external tools (formatters, linters, type checkers) or run
in-process; lintcrew's concern is that every applicable check ran, on the
right files, and that the aggregate verdict is correct.

Examples:
	# Show available commands and global flags
	lintcrew --help

	# Run all checks against the current directory
	lintcrew run

	# List checks
	lintcrew checks list

	# Print build info
	lintcrew version

Output:
	By default, commands write human-readable output to stdout.
	Some commands support structured output via emitter flags (see each command's --help).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Enable verbose diagnostics")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
