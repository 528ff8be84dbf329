package fileset

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// trackedFiles returns the paths (relative to root, slash-separated) that
// version control considers tracked; untracked and ignored files are
// excluded. Outside a git work tree it falls back to a plain directory walk
// that skips dot-directories.
func trackedFiles(root string) ([]string, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return walkFiles(root)
		}
		return nil, fmt.Errorf("open repository at %s: %w", root, err)
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("read git index: %w", err)
	}
	files := make([]string, 0, len(idx.Entries))
	for _, entry := range idx.Entries {
		files = append(files, entry.Name)
	}
	return files, nil
}

func walkFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}
