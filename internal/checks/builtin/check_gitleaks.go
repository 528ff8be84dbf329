package builtin

import "lintcrew/internal/checks"

func init() {
	// gitleaks scans the whole tree itself, so no file targets are passed
	// and the check runs unconditionally.
	checks.Register(checks.Check{
		Name:        "gitleaks",
		Description: "Secret scanning over the working tree (gitleaks). Enabled with --full.",
		Command:     []string{"gitleaks", "detect", "--no-banner"},
		CheckArgs:   []string{"--exit-code", "1"},
		NoTargets:   true,
		FullOnly:    true,
	})
}
