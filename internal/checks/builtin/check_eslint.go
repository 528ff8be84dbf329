package builtin

import "lintcrew/internal/checks"

func init() {
	checks.Register(checks.Check{
		Name:        "eslint",
		Description: "JavaScript/TypeScript linting (eslint). Requires a project eslint config.",
		Extensions:  []string{"js", "jsx", "ts", "tsx"},
		Command:     []string{"eslint"},
		CheckArgs:   []string{"--no-error-on-unmatched-pattern"},
		FixArgs:     []string{"--fix", "--no-error-on-unmatched-pattern"},
	})
}
