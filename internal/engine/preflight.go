package engine

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// Preflight verifies that every external tool binary the plan will invoke
// resolves in PATH. Missing binaries are a configuration error surfaced
// before any check runs; --force skips the preflight, and missing tools then
// surface as per-check invocation errors at execution time.
func Preflight(plan []PlannedCheck) error {
	seen := make(map[string]bool)
	var missing []string
	for _, pc := range plan {
		if !pc.Invoked() || !pc.Check.External() {
			continue
		}
		bin := pc.Check.Command[0]
		if seen[bin] {
			continue
		}
		seen[bin] = true
		if _, err := exec.LookPath(bin); err != nil {
			missing = append(missing, bin)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("required tools not found in PATH: %s (use --force to run anyway)", strings.Join(missing, ", "))
	}
	return nil
}
