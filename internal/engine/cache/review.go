package cache

import (
	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
)

// BaselineSuffix separates the baseline slot of a path from its working slot.
const BaselineSuffix = "#baseline"

// ReviewQuery looks up the review of one slot of a file.
type ReviewQuery struct {
	Path    string
	Content string
	Kind    domain.ReviewKind
}

// ReviewEntry stores the review of one slot of a file.
type ReviewEntry struct {
	Path    string
	Content string
	Kind    domain.ReviewKind
	Result  *domain.ReviewResult
}

type reviewItem struct {
	digest domain.ContentDigest
	kind   domain.ReviewKind
	result *domain.ReviewResult
}

// ReviewCache caches full-file reviews. Each path has a working and a baseline slot.
type ReviewCache struct {
	engine *Engine[reviewItem]
	hasher ports.ContentHasher
}

// NewReviewCache creates an empty ReviewCache.
func NewReviewCache(hasher ports.ContentHasher) *ReviewCache {
	return &ReviewCache{
		engine: NewEngine[reviewItem](),
		hasher: hasher,
	}
}

// ReviewKey derives the key of one slot of path.
func ReviewKey(path string, kind domain.ReviewKind) string {
	key := PathKey(path)
	if kind == domain.ReviewBaseline {
		key += BaselineSuffix
	}
	return key
}

// Get returns the cached review, or nil unless both the content digest and the slot match.
func (c *ReviewCache) Get(q ReviewQuery) *domain.ReviewResult {
	item, ok := c.engine.Load(ReviewKey(q.Path, q.Kind))
	if !ok || item.kind != q.Kind || item.digest != c.hasher.Digest(q.Content) {
		return nil
	}
	return item.result
}

// Put stores e, replacing whatever was cached for its slot.
func (c *ReviewCache) Put(e ReviewEntry) {
	c.engine.Store(ReviewKey(e.Path, e.Kind), reviewItem{
		digest: c.hasher.Digest(e.Content),
		kind:   e.Kind,
		result: e.Result,
	})
}

// Invalidate drops the entry under key.
func (c *ReviewCache) Invalidate(key string) { c.engine.Invalidate(key) }

// Remove drops the entry under key.
func (c *ReviewCache) Remove(key string) { c.engine.Remove(key) }

// UpdateKey relocates the entry under oldKey to newKey.
func (c *ReviewCache) UpdateKey(oldKey, newKey string) { c.engine.UpdateKey(oldKey, newKey) }

// InvalidatePath drops both slots of path.
func (c *ReviewCache) InvalidatePath(path string) {
	c.engine.Invalidate(ReviewKey(path, domain.ReviewWorking))
	c.engine.Invalidate(ReviewKey(path, domain.ReviewBaseline))
}

// RemovePath drops both slots of path.
func (c *ReviewCache) RemovePath(path string) {
	c.engine.Remove(ReviewKey(path, domain.ReviewWorking))
	c.engine.Remove(ReviewKey(path, domain.ReviewBaseline))
}

// RenamePath moves both slots of oldPath to newPath.
func (c *ReviewCache) RenamePath(oldPath, newPath string) {
	c.engine.UpdateKey(ReviewKey(oldPath, domain.ReviewWorking), ReviewKey(newPath, domain.ReviewWorking))
	c.engine.UpdateKey(ReviewKey(oldPath, domain.ReviewBaseline), ReviewKey(newPath, domain.ReviewBaseline))
}

// Clear drops every entry.
func (c *ReviewCache) Clear() { c.engine.Clear() }

// Keys returns a sorted snapshot of the stored keys.
func (c *ReviewCache) Keys() []string { return c.engine.Keys() }

// Subscribe registers fn for every cache update.
func (c *ReviewCache) Subscribe(fn func(Update)) func() { return c.engine.Subscribe(fn) }
