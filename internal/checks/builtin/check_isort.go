package builtin

import "lintcrew/internal/checks"

func init() {
	checks.Register(checks.Check{
		Name:        "isort",
		Description: "Python import ordering (isort, black profile).",
		Extensions:  []string{"py", "pyi"},
		Command:     []string{"isort", "--profile", "black"},
		CheckArgs:   []string{"--check-only", "--diff"},
		// Fix mode needs no extra arguments; isort rewrites by default.
		FixArgs: []string{},
	})
}
