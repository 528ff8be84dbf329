package builtin

import "lintcrew/internal/checks"

func init() {
	checks.Register(checks.Check{
		Name:        "shellcheck",
		Description: "Shell script analysis (shellcheck).",
		Extensions:  []string{"sh", "bash"},
		Command:     []string{"shellcheck"},
		CheckArgs:   []string{"--severity=warning"},
	})
}
