package cache

import "path/filepath"

// Invalidator is the file lifecycle surface shared by every concrete cache.
type Invalidator interface {
	// InvalidatePath drops everything cached for path.
	InvalidatePath(path string)
	// RemovePath drops everything cached for a path whose file is gone.
	RemovePath(path string)
	// RenamePath moves everything cached for oldPath to newPath.
	RenamePath(oldPath, newPath string)
	// Clear drops every entry.
	Clear()
	// Keys returns a sorted snapshot of the stored keys.
	Keys() []string
}

var (
	_ Invalidator = (*ReviewCache)(nil)
	_ Invalidator = (*DeltaCache)(nil)
	_ Invalidator = (*CandidateCache)(nil)
)

// PathKey is the key every cache derives from a file path.
func PathKey(path string) string {
	return filepath.Clean(path)
}
