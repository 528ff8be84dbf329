package fileset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.py", "py"},
		{"dir/b.tar.gz", "gz"},
		{"Makefile", ""},
		{".gitignore", ""},
		{"dir/.env", ""},
		{"UPPER.PY", "PY"}, // case-sensitive
	}
	for _, tt := range tests {
		if got := Extension(tt.path); got != tt.want {
			t.Errorf("Extension(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestClassify_BucketsByExtension(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py":       "print(1)\n",
		"sub/b.py":   "print(2)\n",
		"c.sh":       "echo hi\n",
		"README.md":  "# hi\n",
		"Makefile":   "all:\n",
		".hidden/x":  "ignored by fallback walk\n",
		"dup/d.tsx":  "x\n",
		"dup/d2.tsx": "y\n",
	})

	c, err := Classify(root, map[string][]string{"backend": {"py"}}, nil)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	// 7 files: .hidden/ is skipped by the fallback walk, Makefile has no
	// extension but is still part of the full set.
	if got := c.Len(); got != 7 {
		t.Fatalf("Len() = %d, want 7 (all: %v)", got, c.All())
	}

	py := c.WithExtensions([]string{"py"})
	want := []string{"a.py", "sub/b.py"}
	if !reflect.DeepEqual(py, want) {
		t.Errorf("WithExtensions(py) = %v, want %v", py, want)
	}

	// A check with no file-type filter receives the full set.
	if got := c.WithExtensions(nil); len(got) != 7 {
		t.Errorf("WithExtensions(nil) = %d files, want 7", len(got))
	}

	group, ok := c.Group("backend")
	if !ok {
		t.Fatal("group backend not found")
	}
	if !reflect.DeepEqual(group, want) {
		t.Errorf("Group(backend) = %v, want %v", group, want)
	}
}

func TestClassify_ExclusionNeverReachesAnyBucket(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.py":          "x\n",
		"vendor/b.py":   "x\n",
		"gen/c.min.js":  "x\n",
		"keep/d.js":     "x\n",
		"exact/skip.py": "x\n",
	})

	c, err := Classify(root, nil, []string{"vendor/", "*.min.js", "exact/skip.py"})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	for _, rel := range c.All() {
		switch rel {
		case "vendor/b.py", "gen/c.min.js", "exact/skip.py":
			t.Errorf("excluded file %s present in classification", rel)
		}
	}
	if got := c.WithExtensions([]string{"py"}); !reflect.DeepEqual(got, []string{"a.py"}) {
		t.Errorf("py bucket = %v, want [a.py]", got)
	}
	if got := c.WithExtensions([]string{"js"}); !reflect.DeepEqual(got, []string{"keep/d.js"}) {
		t.Errorf("js bucket = %v, want [keep/d.js]", got)
	}
}

func TestClassify_UnresolvableRoot(t *testing.T) {
	if _, err := Classify(filepath.Join(t.TempDir(), "nope"), nil, nil); err == nil {
		t.Fatal("expected error for unresolvable root")
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		rel     string
		want    bool
	}{
		{"vendor", "vendor/a.py", true},
		{"vendor/", "vendor/a.py", true},
		{"vendor", "vendors/a.py", false},
		{"a.py", "a.py", true},
		{"a.py", "sub/a.py", false},
		{"*.min.js", "deep/dir/x.min.js", true},
		{"sub/*.py", "sub/a.py", true},
		{"sub/*.py", "sub/deep/a.py", false},
		{"", "anything", false},
	}
	for _, tt := range tests {
		if got := matchPattern(tt.pattern, tt.rel); got != tt.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.pattern, tt.rel, got, tt.want)
		}
	}
}
