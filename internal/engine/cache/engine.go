// Package cache holds the in-memory, content-digest keyed caches that sit in
// front of the analysis engine. Entries live for the whole process; there is
// no TTL or eviction.
package cache

import (
	"slices"
	"sync"

	"go.trai.ch/vigil/internal/engine/notify"
)

// UpdateKind describes the mutation an Update reports.
type UpdateKind uint8

const (
	// UpdateStored reports that an item was written.
	UpdateStored UpdateKind = iota
	// UpdateInvalidated reports that an item was dropped because it is outdated.
	UpdateInvalidated
	// UpdateRemoved reports that an item was dropped because its file is gone.
	UpdateRemoved
	// UpdateMoved reports that an item was relocated from OldKey to Key.
	UpdateMoved
	// UpdateCleared reports that every item was dropped.
	UpdateCleared
)

// String returns the string representation of the UpdateKind.
func (k UpdateKind) String() string {
	switch k {
	case UpdateStored:
		return "stored"
	case UpdateInvalidated:
		return "invalidated"
	case UpdateRemoved:
		return "removed"
	case UpdateMoved:
		return "moved"
	case UpdateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Update is the cache-updated-for-key event.
type Update struct {
	Kind UpdateKind
	// Key is the affected key. It is empty for UpdateCleared.
	Key string
	// OldKey is the previous key of an UpdateMoved.
	OldKey string
}

// Engine is a concurrency-safe map from key to item. Items are stored by value
// and replaced wholesale, so a reader sees a complete item or none.
//
// Mutations and their Updates are serialized by emitMu, so subscribers see
// Updates in the order the map applied them.
type Engine[T any] struct {
	emitMu sync.Mutex

	mu    sync.RWMutex
	items map[string]T

	updates notify.Hub[Update]
}

// NewEngine creates an empty Engine.
func NewEngine[T any]() *Engine[T] {
	return &Engine[T]{
		items: make(map[string]T),
	}
}

// Load returns the item stored under key.
func (e *Engine[T]) Load(key string) (T, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	item, ok := e.items[key]
	return item, ok
}

// Store writes item under key, replacing any previous item.
func (e *Engine[T]) Store(key string, item T) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	e.items[key] = item
	e.mu.Unlock()

	e.emit(Update{Kind: UpdateStored, Key: key})
}

// Invalidate drops the item under key. It is a no-op when key is absent.
func (e *Engine[T]) Invalidate(key string) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	if e.drop(key) {
		e.emit(Update{Kind: UpdateInvalidated, Key: key})
	}
}

// Remove drops the item under key. It is a no-op when key is absent.
func (e *Engine[T]) Remove(key string) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	if e.drop(key) {
		e.emit(Update{Kind: UpdateRemoved, Key: key})
	}
}

func (e *Engine[T]) drop(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.items[key]; !ok {
		return false
	}
	delete(e.items, key)
	return true
}

// UpdateKey moves the item under oldKey to newKey in one step, overwriting any
// item already under newKey. It is a no-op when oldKey is absent or equal to newKey.
func (e *Engine[T]) UpdateKey(oldKey, newKey string) {
	if oldKey == newKey {
		return
	}

	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	item, ok := e.items[oldKey]
	if ok {
		delete(e.items, oldKey)
		e.items[newKey] = item
	}
	e.mu.Unlock()

	if ok {
		e.emit(Update{Kind: UpdateMoved, Key: newKey, OldKey: oldKey})
	}
}

// Clear drops every item.
func (e *Engine[T]) Clear() {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	e.items = make(map[string]T)
	e.mu.Unlock()

	e.emit(Update{Kind: UpdateCleared})
}

// Keys returns a sorted snapshot of the stored keys.
func (e *Engine[T]) Keys() []string {
	e.mu.RLock()
	keys := make([]string, 0, len(e.items))
	for k := range e.items {
		keys = append(keys, k)
	}
	e.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// Len returns the number of stored items.
func (e *Engine[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.items)
}

// Subscribe registers fn for every Update. fn is called synchronously by the
// mutating goroutine after the mutation is applied. It may read the cache but
// must not mutate it. The returned function unregisters fn.
func (e *Engine[T]) Subscribe(fn func(Update)) func() {
	return e.updates.Subscribe(fn)
}

func (e *Engine[T]) emit(u Update) {
	e.updates.Emit(u)
}
