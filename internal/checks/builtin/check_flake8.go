package builtin

import "lintcrew/internal/checks"

func init() {
	// flake8 dominates the wall clock on large Python trees, so it runs as
	// two parallel instances over deterministic halves of the file set.
	checks.RegisterSharded(checks.Check{
		Name:        "flake8",
		Description: "Python style and error linting (flake8), sharded across two parallel instances.",
		Extensions:  []string{"py"},
		Command:     []string{"flake8"},
	}, 2)
}
