package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lintcrew/internal/checks"
)

var checksListQuiet bool
var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "Manage and list checks",
	Long: `Manage lintcrew checks.

This command group helps you discover which checks exist and what each check
does. Checks are executed by "lintcrew run" (see its --help).

Examples:
  # List all available checks
  lintcrew checks list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var checksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available checks",
	Long: `List all checks currently registered in this build, in registration order.

Examples:
  lintcrew checks list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range checks.All() {
			if checksListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), c.Name)
			} else {
				printCheck(cmd.OutOrStdout(), c)
			}
		}
		return nil
	},
}

var checksShowCmd = &cobra.Command{
	Use:   "show [check-name]",
	Short: "Show details of a specific check",
	Long: `Show details of a specific check by its name.

Examples:
  lintcrew checks show flake8_1
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ok := checks.Lookup(args[0])
		if !ok {
			return fmt.Errorf("check not found: %s", args[0])
		}
		printCheck(cmd.OutOrStdout(), c)
		return nil
	},
}

func printCheck(w io.Writer, c checks.Check) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "CHECK: %s\n", c.Name)
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, c.Description)

	if c.External() {
		fmt.Fprintf(w, "Tool:       %s\n", strings.Join(c.Command, " "))
	} else {
		fmt.Fprintln(w, "Tool:       (in-process)")
	}
	if len(c.Extensions) > 0 {
		fmt.Fprintf(w, "Extensions: %s\n", strings.Join(c.Extensions, ", "))
	} else {
		fmt.Fprintln(w, "Extensions: (all tracked files)")
	}
	if c.Fixable() {
		fmt.Fprintln(w, "Fix mode:   supported")
	}
	if c.ShardCount > 0 {
		fmt.Fprintf(w, "Shard:      %d of %d\n", c.ShardIndex+1, c.ShardCount)
	}
	if c.FullOnly {
		fmt.Fprintln(w, "Enabled:    only with --full")
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(checksCmd)
	checksCmd.AddCommand(checksListCmd)
	checksListCmd.Flags().BoolVarP(&checksListQuiet, "quiet", "q", false, "Only print check names")
	checksCmd.AddCommand(checksShowCmd)
}
