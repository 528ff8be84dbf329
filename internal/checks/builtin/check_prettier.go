package builtin

import "lintcrew/internal/checks"

func init() {
	checks.Register(checks.Check{
		Name:        "prettier",
		Description: "Frontend and config-file formatting (prettier).",
		Extensions:  []string{"js", "jsx", "ts", "tsx", "css", "json", "yml", "yaml", "md"},
		Exclude:     []string{"*.min.js", "package-lock.json"},
		Command:     []string{"prettier"},
		CheckArgs:   []string{"--check", "--log-level", "warn"},
		FixArgs:     []string{"--write", "--log-level", "warn"},
	})
}
