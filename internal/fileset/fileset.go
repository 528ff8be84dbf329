// Package fileset classifies the tracked files of a working tree by
// extension and applies exclusion rules. The classification is computed once
// per run, before any check is scheduled, and is safe for concurrent read
// afterwards because it is never mutated.
package fileset

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Classified is the shared, immutable result of classifying a working tree.
type Classified struct {
	root   string
	all    []string
	byExt  map[string][]string
	groups map[string][]string
}

// Classify walks the tracked files under root, skips files matching any
// exclusion pattern, and buckets the rest by extension. Group definitions map
// a group name to a set of extensions; a file's group membership is a pure
// function of its extension. An unresolvable root is a configuration error;
// individual unreadable files are skipped with a warning, not fatal.
func Classify(root string, groups map[string][]string, exclusions []string) (*Classified, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", root)
	}

	tracked, err := trackedFiles(abs)
	if err != nil {
		return nil, err
	}
	sort.Strings(tracked)

	c := &Classified{
		root:   abs,
		byExt:  make(map[string][]string),
		groups: make(map[string][]string, len(groups)),
	}
	for name, exts := range groups {
		normalized := make([]string, 0, len(exts))
		for _, ext := range exts {
			normalized = append(normalized, strings.TrimPrefix(ext, "."))
		}
		sort.Strings(normalized)
		c.groups[name] = normalized
	}

	var prev string
	for _, rel := range tracked {
		if rel == prev {
			continue
		}
		prev = rel
		if MatchesAny(exclusions, rel) {
			continue
		}
		if _, err := os.Stat(filepath.Join(abs, filepath.FromSlash(rel))); err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping unreadable file %s: %v\n", rel, err)
			continue
		}
		c.all = append(c.all, rel)
		if ext := Extension(rel); ext != "" {
			c.byExt[ext] = append(c.byExt[ext], rel)
		}
	}
	return c, nil
}

// Root returns the absolute root the classification was computed from.
func (c *Classified) Root() string { return c.root }

func (c *Classified) Len() int { return len(c.all) }

// All returns every classified file, sorted, as a fresh slice.
func (c *Classified) All() []string {
	out := make([]string, len(c.all))
	copy(out, c.all)
	return out
}

// WithExtensions returns the files whose extension is in exts, preserving the
// classification's sorted order. An empty ext set means no file-type filter
// and returns the full set.
func (c *Classified) WithExtensions(exts []string) []string {
	if len(exts) == 0 {
		return c.All()
	}
	want := make(map[string]bool, len(exts))
	for _, ext := range exts {
		want[strings.TrimPrefix(ext, ".")] = true
	}
	var out []string
	for _, rel := range c.all {
		if want[Extension(rel)] {
			out = append(out, rel)
		}
	}
	return out
}

// Extensions returns the distinct extensions seen, sorted.
func (c *Classified) Extensions() []string {
	out := make([]string, 0, len(c.byExt))
	for ext := range c.byExt {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// GroupExtensions returns the extension set a named group maps to.
func (c *Classified) GroupExtensions(name string) ([]string, bool) {
	exts, ok := c.groups[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(exts))
	copy(out, exts)
	return out, true
}

// Group returns the files belonging to a named group.
func (c *Classified) Group(name string) ([]string, bool) {
	exts, ok := c.groups[name]
	if !ok {
		return nil, false
	}
	return c.WithExtensions(exts), true
}

// Extension derives a file's extension: the last segment of the base name
// after the final dot, case-sensitive and without the dot. Dotfiles and
// names without a dot have no extension.
func Extension(rel string) string {
	base := path.Base(rel)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return base[idx+1:]
}

// MatchesAny reports whether rel matches any exclusion pattern.
func MatchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if matchPattern(p, rel) {
			return true
		}
	}
	return false
}

// matchPattern accepts three pattern forms: an exact path, a directory prefix
// (with or without a trailing slash), and a path.Match glob. Globs without a
// path separator also match against the base name, so "*.min.js" excludes
// minified files anywhere in the tree.
func matchPattern(pattern, rel string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}
	p := strings.TrimSuffix(pattern, "/")
	if p == rel || strings.HasPrefix(rel, p+"/") {
		return true
	}
	if ok, _ := path.Match(pattern, rel); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if ok, _ := path.Match(pattern, path.Base(rel)); ok {
			return true
		}
	}
	return false
}
