package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ProjectFileName), []byte(content), 0o644))
	return root
}

func TestLoadProjectFile_MissingFileIsEmpty(t *testing.T) {
	pf, err := LoadProjectFile(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, pf.Exclude)
	assert.Empty(t, pf.Groups)
	assert.Zero(t, pf.Concurrency)
}

func TestLoadProjectFile_ParsesYAML(t *testing.T) {
	root := writeProjectFile(t, `
exclude:
  - vendor/
  - "*.min.js"
groups:
  docs:
    - md
    - rst
concurrency: 4
`)
	pf, err := LoadProjectFile(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor/", "*.min.js"}, pf.Exclude)
	assert.Equal(t, []string{"md", "rst"}, pf.Groups["docs"])
	assert.Equal(t, 4, pf.Concurrency)
}

func TestLoadProjectFile_MalformedYAML(t *testing.T) {
	root := writeProjectFile(t, "exclude: [unclosed\n")
	_, err := LoadProjectFile(root)
	require.Error(t, err)
}

func TestLoadProjectFile_EnvironmentOverridesFile(t *testing.T) {
	root := writeProjectFile(t, "concurrency: 4\n")
	t.Setenv("LINTCREW_CONCURRENCY", "9")

	pf, err := LoadProjectFile(root)
	require.NoError(t, err)
	assert.Equal(t, 9, pf.Concurrency)
}

func TestApply_Precedence(t *testing.T) {
	pf := &ProjectFile{
		Exclude:     []string{"vendor/"},
		Groups:      map[string][]string{"backend": {"py"}, "docs": {"md"}},
		Concurrency: 4,
	}

	t.Run("flag wins over project file", func(t *testing.T) {
		cfg := New()
		cfg.Runtime.Concurrency = 16
		pf.Apply(cfg, true)
		assert.Equal(t, 16, cfg.Runtime.Concurrency)
	})

	t.Run("project file fills unset flag", func(t *testing.T) {
		cfg := New()
		pf.Apply(cfg, false)
		assert.Equal(t, 4, cfg.Runtime.Concurrency)
	})

	t.Run("exclusions accumulate", func(t *testing.T) {
		cfg := New()
		cfg.Workspace.Exclude = []string{"dist/"}
		pf.Apply(cfg, false)
		assert.Equal(t, []string{"dist/", "vendor/"}, cfg.Workspace.Exclude)
	})

	t.Run("groups override per name, defaults stay", func(t *testing.T) {
		cfg := New()
		pf.Apply(cfg, false)
		assert.Equal(t, []string{"py"}, cfg.Workspace.Groups["backend"])
		assert.Equal(t, []string{"md"}, cfg.Workspace.Groups["docs"])
		assert.Contains(t, cfg.Workspace.Groups, "frontend")
	})
}
