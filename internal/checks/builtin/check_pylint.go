package builtin

import (
	"strings"

	"lintcrew/internal/checks"
)

// pylint exits nonzero whenever it emits any message, and it always prints a
// rating summary and module banners. The suppression predicate accepts those
// decorative lines so a run whose only output is the summary counts as a
// pass; any real finding line rejects and the nonzero exit stands.
func pylintBenignLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return true
	case strings.HasPrefix(trimmed, "***"):
		return true
	case strings.HasPrefix(trimmed, "---"):
		return true
	case strings.HasPrefix(trimmed, "Your code has been rated"):
		return true
	}
	return false
}

func init() {
	checks.Register(checks.Check{
		Name:         "pylint",
		Description:  "Deep Python linting (pylint). Slow; enabled with --full.",
		Extensions:   []string{"py"},
		Command:      []string{"pylint"},
		CheckArgs:    []string{"--score=y"},
		SuppressLine: pylintBenignLine,
		FullOnly:     true,
	})
}
