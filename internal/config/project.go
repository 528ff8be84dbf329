package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// ProjectFileName is the optional per-project configuration file, looked up
// at the workspace root.
const ProjectFileName = ".lintcrew.yml"

const maxProjectFileSize = 1024 * 1024 // 1MB

// ProjectFile holds the settings a project can pin in version control:
// global exclusion patterns, group definitions, and a concurrency override.
type ProjectFile struct {
	Exclude     []string            `koanf:"exclude"`
	Groups      map[string][]string `koanf:"groups"`
	Concurrency int                 `koanf:"concurrency"`
}

// LoadProjectFile reads .lintcrew.yml under root if present, then applies
// LINTCREW_* environment overrides.
//
// Precedence (highest to lowest):
//  1. Environment variables (LINTCREW_CONCURRENCY, ...)
//  2. YAML project file
//  3. Zero values (callers fall back to built-in defaults)
//
// A missing file is not an error; a malformed or oversized one is.
func LoadProjectFile(root string) (*ProjectFile, error) {
	k := koanf.New(".")

	path := filepath.Join(root, ProjectFileName)
	if info, err := os.Stat(path); err == nil {
		if info.Size() > maxProjectFileSize {
			return nil, fmt.Errorf("project config %s exceeds %d bytes", path, maxProjectFileSize)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read project config: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// Environment variables map onto top-level keys:
	// LINTCREW_CONCURRENCY -> concurrency
	if err := k.Load(env.Provider("LINTCREW_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LINTCREW_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment overrides: %w", err)
	}

	var pf ProjectFile
	if err := k.Unmarshal("", &pf); err != nil {
		return nil, fmt.Errorf("unmarshal project config: %w", err)
	}
	return &pf, nil
}

// Apply folds project-file settings into cfg. Exclusions accumulate on top
// of the CLI's; group definitions override the built-in defaults per name;
// the concurrency override applies only when the CLI flag was not set.
func (p *ProjectFile) Apply(cfg *Config, concurrencyFlagSet bool) {
	if p == nil || cfg == nil {
		return
	}
	cfg.Workspace.Exclude = append(cfg.Workspace.Exclude, p.Exclude...)
	if cfg.Workspace.Groups == nil {
		cfg.Workspace.Groups = DefaultGroups()
	}
	for name, exts := range p.Groups {
		cfg.Workspace.Groups[name] = exts
	}
	if p.Concurrency > 0 && !concurrencyFlagSet {
		cfg.Runtime.Concurrency = p.Concurrency
	}
}
