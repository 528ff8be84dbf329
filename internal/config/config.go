package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect run
	// behavior, keep the CLI flags in internal/cli/run.go in sync.
	Workspace Workspace
	Checks    Checks
	Output    Output
	Runtime   Runtime
}

type Workspace struct {
	// Root is the working tree to classify and run checks against (see --root).
	// Subprocess checks run with their working directory set here.
	Root string

	// Exclude removes matching files from consideration for all checks
	// (see --exclude and the project file). Patterns are exact paths,
	// directory prefixes, or path.Match globs.
	Exclude []string

	// Groups maps a group name to a set of file extensions. Populated from
	// the project file on top of the built-in defaults.
	Groups map[string][]string
}

type Checks struct {
	// Selector selects which checks to run.
	// Empty means all checks; otherwise a comma-separated name list (see --checks).
	Selector string

	// Group restricts the run to checks whose extensions intersect the
	// named group's extension set (see --group).
	Group string

	// Fix runs checks in fix mode: fix-capable tools rewrite files in
	// place, checks without fix arguments are skipped (see --fix).
	Fix bool

	// Full additionally enables checks registered as full-only (see --full).
	Full bool

	// Force bypasses the environment preflight; missing tool binaries then
	// surface as per-check errors instead of aborting the run (see --force).
	Force bool

	// List prints the resolved execution plan without invoking anything
	// (see --list).
	List bool
}

type Output struct {
	// ConsoleFormat controls the human-facing console sink format (see --console-format).
	// Allowed values: text, json, ndjson.
	ConsoleFormat string

	// ConsoleFilterStatus filters console output by outcome status (see --console-filter-status).
	// Allowed values: PASS, FAIL, SKIPPED, ERROR.
	ConsoleFilterStatus []string

	// Report writes a Markdown report to this path (see --report).
	Report string

	// Out writes structured output to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: json, ndjson. If empty, it is inferred from the --out file extension.
	OutFormat string

	// Emit writes an additional structured event stream to stdout (see --emit).
	// Allowed values: json, ndjson.
	Emit []string

	// NoConsole suppresses the console sink (see --no-console).
	NoConsole bool
}

type Runtime struct {
	// Concurrency bounds how many checks run in parallel (see --concurrency).
	// Must be >= 1.
	Concurrency int

	// Timeout is the global timeout for the whole run (see --timeout).
	// Must be > 0.
	Timeout time.Duration

	// Verbose enables more detailed diagnostics.
	Verbose bool
}

func New() *Config {
	return &Config{
		Workspace: Workspace{
			Root:   ".",
			Groups: DefaultGroups(),
		},
		Output: Output{
			ConsoleFormat: "text",
		},
		Runtime: Runtime{
			Concurrency: runtime.NumCPU(),
			Timeout:     15 * time.Minute,
		},
	}
}

// DefaultGroups is the built-in group→extensions mapping, used when the
// project file does not define groups. Groups may overlap in extension
// membership.
func DefaultGroups() map[string][]string {
	return map[string][]string{
		"backend":  {"py", "pyi"},
		"frontend": {"js", "jsx", "ts", "tsx"},
		"scripts":  {"sh", "bash"},
	}
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Workspace.Exclude = splitCommaList(c.Workspace.Exclude)
	c.Output.Emit = splitCommaList(c.Output.Emit)
	c.Output.ConsoleFilterStatus = splitCommaList(c.Output.ConsoleFilterStatus)

	if strings.TrimSpace(c.Workspace.Root) == "" {
		return errors.New("--root must not be empty")
	}

	// Output validation
	c.Output.ConsoleFormat = normalizeEnumValue(c.Output.ConsoleFormat)
	if c.Output.ConsoleFormat == "" {
		c.Output.ConsoleFormat = "text"
	}
	if c.Output.ConsoleFormat != "text" && c.Output.ConsoleFormat != "json" && c.Output.ConsoleFormat != "ndjson" {
		return fmt.Errorf("unsupported --console-format: %s (must be one of: text, json, ndjson)", c.Output.ConsoleFormat)
	}

	for _, emit := range c.Output.Emit {
		v := normalizeEnumValue(emit)
		if v != "json" && v != "ndjson" {
			return fmt.Errorf("unsupported --emit value: %s (must be one of: json, ndjson)", emit)
		}
	}

	// Runtime validation
	if c.Runtime.Concurrency <= 0 {
		return errors.New("--concurrency must be >= 1")
	}
	if c.Runtime.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else if c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
			return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
		}
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
