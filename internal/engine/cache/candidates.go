package cache

import (
	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
)

// CandidateQuery looks up the refactor candidates of a file.
type CandidateQuery struct {
	Path    string
	Content string
}

// CandidateEntry stores the refactor candidates of a file.
type CandidateEntry struct {
	Path       string
	Content    string
	Candidates []domain.RefactorCandidate
}

type candidateItem struct {
	digest     domain.ContentDigest
	candidates []domain.RefactorCandidate
}

// CandidateCache caches the refactorable functions found in a file.
// Slices going in and out are copied, so callers never share them with the cache.
type CandidateCache struct {
	engine *Engine[candidateItem]
	hasher ports.ContentHasher
}

// NewCandidateCache creates an empty CandidateCache.
func NewCandidateCache(hasher ports.ContentHasher) *CandidateCache {
	return &CandidateCache{
		engine: NewEngine[candidateItem](),
		hasher: hasher,
	}
}

// Get returns the cached candidates. A miss returns an empty, non-nil slice.
func (c *CandidateCache) Get(q CandidateQuery) []domain.RefactorCandidate {
	candidates, _ := c.Lookup(q)
	return candidates
}

// Lookup is Get that also reports whether the cache was hit,
// telling a cached empty list apart from a miss.
func (c *CandidateCache) Lookup(q CandidateQuery) ([]domain.RefactorCandidate, bool) {
	item, ok := c.engine.Load(PathKey(q.Path))
	if !ok || item.digest != c.hasher.Digest(q.Content) {
		return []domain.RefactorCandidate{}, false
	}
	return cloneCandidates(item.candidates), true
}

// Put stores e, replacing whatever was cached for its path.
func (c *CandidateCache) Put(e CandidateEntry) {
	c.engine.Store(PathKey(e.Path), candidateItem{
		digest:     c.hasher.Digest(e.Content),
		candidates: cloneCandidates(e.Candidates),
	})
}

func cloneCandidates(in []domain.RefactorCandidate) []domain.RefactorCandidate {
	out := make([]domain.RefactorCandidate, len(in))
	for i, c := range in {
		out[i] = c.WithRange(c.Range)
	}
	return out
}

// InvalidatePath drops the entry for path.
func (c *CandidateCache) InvalidatePath(path string) { c.engine.Invalidate(PathKey(path)) }

// RemovePath drops the entry for path.
func (c *CandidateCache) RemovePath(path string) { c.engine.Remove(PathKey(path)) }

// RenamePath moves the entry for oldPath to newPath.
func (c *CandidateCache) RenamePath(oldPath, newPath string) {
	c.engine.UpdateKey(PathKey(oldPath), PathKey(newPath))
}

// Clear drops every entry.
func (c *CandidateCache) Clear() { c.engine.Clear() }

// Keys returns a sorted snapshot of the stored keys.
func (c *CandidateCache) Keys() []string { return c.engine.Keys() }

// Subscribe registers fn for every cache update.
func (c *CandidateCache) Subscribe(fn func(Update)) func() { return c.engine.Subscribe(fn) }
