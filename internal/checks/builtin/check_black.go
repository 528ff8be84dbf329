// Package builtin declares the stock check set. Each check registers itself
// in an init function, mirroring how the binary assembles its rule set: the
// main package blank-imports this package and the registry does the rest.
package builtin

import "lintcrew/internal/checks"

func init() {
	checks.Register(checks.Check{
		Name:        "black",
		Description: "Python code formatting (black). Check mode diffs, fix mode rewrites in place.",
		Extensions:  []string{"py", "pyi"},
		Command:     []string{"black"},
		CheckArgs:   []string{"--check", "--diff", "--quiet"},
		FixArgs:     []string{"--quiet"},
	})
}
