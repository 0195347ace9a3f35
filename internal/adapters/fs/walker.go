// Package fs provides file system adapters for walking, reading and digesting documents.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
)

// Walker provides file walking functionality.
type Walker struct {
	skip []string
}

// NewWalker creates a new Walker that never descends into the named directories.
func NewWalker(skip ...string) *Walker {
	return &Walker{skip: slices.Clone(skip)}
}

// WalkFiles yields every regular file below root. Paths include root.
// A root that is a file yields just that file.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if info, err := os.Stat(root); err == nil && !info.IsDir() {
			yield(root)
			return
		}
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if skip, action := w.shouldSkip(d, ignores); skip {
				return action
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// shouldSkip reports whether d is excluded, and the walk action to return for it.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() && slices.Contains(w.skip, name) {
		return true, filepath.SkipDir
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
