package builtin

import "lintcrew/internal/checks"

func init() {
	checks.Register(checks.Check{
		Name:        "mypy",
		Description: "Python static type checking (mypy).",
		Extensions:  []string{"py", "pyi"},
		Command:     []string{"mypy"},
		CheckArgs:   []string{"--no-error-summary", "--follow-imports=silent"},
		Exclude:     []string{"setup.py"},
	})
}
