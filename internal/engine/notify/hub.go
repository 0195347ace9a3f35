// Package notify provides synchronous observer registration for engine events.
package notify

import (
	"slices"
	"sync"
)

// Hub delivers events to its subscribers in registration order.
type Hub[E any] struct {
	mu     sync.Mutex
	subs   map[uint64]func(E)
	nextID uint64
}

// Subscribe registers fn and returns a function that unregisters it.
// Calling the returned function more than once is harmless.
func (h *Hub[E]) Subscribe(fn func(E)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs == nil {
		h.subs = make(map[uint64]func(E))
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Emit calls every subscriber with e on the calling goroutine.
// The subscriber list is copied first, so a subscriber may subscribe or unsubscribe.
func (h *Hub[E]) Emit(e E) {
	h.mu.Lock()
	ids := make([]uint64, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(E), len(ids))
	for i, id := range ids {
		fns[i] = h.subs[id]
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// Len returns the number of subscribers.
func (h *Hub[E]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
