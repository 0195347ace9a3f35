package cache

import (
	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
)

// DeltaQuery looks up the delta between two versions of a file.
type DeltaQuery struct {
	Path     string
	Baseline string
	Current  string
}

// DeltaEntry stores the delta between two versions of a file.
// A nil Result records that the engine found no delta.
type DeltaEntry struct {
	Path     string
	Baseline string
	Current  string
	Result   *domain.DeltaResult
}

type deltaItem struct {
	baseline domain.ContentDigest
	current  domain.ContentDigest
	result   *domain.DeltaResult
}

// DeltaCache caches delta analyses. A hit needs both sides to be unchanged.
type DeltaCache struct {
	engine *Engine[deltaItem]
	hasher ports.ContentHasher
}

// NewDeltaCache creates an empty DeltaCache.
func NewDeltaCache(hasher ports.ContentHasher) *DeltaCache {
	return &DeltaCache{
		engine: NewEngine[deltaItem](),
		hasher: hasher,
	}
}

// Get returns the cached delta and true on a hit. A hit may carry a nil result.
func (c *DeltaCache) Get(q DeltaQuery) (*domain.DeltaResult, bool) {
	item, ok := c.engine.Load(PathKey(q.Path))
	if !ok {
		return nil, false
	}
	if item.baseline != c.hasher.Digest(q.Baseline) || item.current != c.hasher.Digest(q.Current) {
		return nil, false
	}
	return item.result, true
}

// Put stores e, replacing whatever was cached for its path.
func (c *DeltaCache) Put(e DeltaEntry) {
	c.engine.Store(PathKey(e.Path), deltaItem{
		baseline: c.hasher.Digest(e.Baseline),
		current:  c.hasher.Digest(e.Current),
		result:   e.Result,
	})
}

// InvalidatePath drops the entry for path.
func (c *DeltaCache) InvalidatePath(path string) { c.engine.Invalidate(PathKey(path)) }

// RemovePath drops the entry for path.
func (c *DeltaCache) RemovePath(path string) { c.engine.Remove(PathKey(path)) }

// RenamePath moves the entry for oldPath to newPath.
func (c *DeltaCache) RenamePath(oldPath, newPath string) {
	c.engine.UpdateKey(PathKey(oldPath), PathKey(newPath))
}

// Clear drops every entry.
func (c *DeltaCache) Clear() { c.engine.Clear() }

// Keys returns a sorted snapshot of the stored keys.
func (c *DeltaCache) Keys() []string { return c.engine.Keys() }

// Subscribe registers fn for every cache update.
func (c *DeltaCache) Subscribe(fn func(Update)) func() { return c.engine.Subscribe(fn) }
