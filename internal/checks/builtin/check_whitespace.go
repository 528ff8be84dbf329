package builtin

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"lintcrew/internal/checks"
)

func init() {
	checks.Register(checks.Check{
		Name:        "trailing-whitespace",
		Description: "No line in a tracked text file ends in spaces or tabs.",
		Run:         checkTrailingWhitespace,
	})
	checks.Register(checks.Check{
		Name:        "final-newline",
		Description: "Every tracked text file ends with a newline.",
		Run:         checkFinalNewline,
	})
}

func checkTrailingWhitespace(ctx context.Context, rc *checks.RunContext) (bool, error) {
	failed := false
	err := eachTextFile(ctx, rc, func(rel string, data []byte) {
		lineno := 0
		for _, line := range bytes.Split(data, []byte("\n")) {
			lineno++
			if n := len(line); n > 0 && (line[n-1] == ' ' || line[n-1] == '\t') {
				fmt.Printf("%s:%d: trailing whitespace\n", rel, lineno)
				failed = true
			}
		}
	})
	return failed, err
}

func checkFinalNewline(ctx context.Context, rc *checks.RunContext) (bool, error) {
	failed := false
	err := eachTextFile(ctx, rc, func(rel string, data []byte) {
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Printf("%s: missing final newline\n", rel)
			failed = true
		}
	})
	return failed, err
}

// eachTextFile visits every classified file, skipping binaries. Unreadable
// files fail the check's invocation; classification already warned about
// files it could not stat, so a read error here is a race worth surfacing.
func eachTextFile(ctx context.Context, rc *checks.RunContext, visit func(rel string, data []byte)) error {
	for _, rel := range rc.Files.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := os.ReadFile(filepath.Join(rc.Files.Root(), filepath.FromSlash(rel)))
		if err != nil {
			return fmt.Errorf("read %s: %w", rel, err)
		}
		if bytes.IndexByte(data, 0) >= 0 {
			continue
		}
		visit(rel, data)
	}
	return nil
}
