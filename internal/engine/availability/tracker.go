// Package availability tracks whether AI-assisted refactoring can be offered.
package availability

import (
	"sync"

	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/engine/notify"
)

// Tracker is the availability state machine. It starts in domain.StateLoading.
//
// Every mutation and the delivery of its transition happen under emitMu, so
// subscribers observe transitions in the order they were applied. Subscribers
// may call State and LastError but must not mutate the tracker synchronously.
type Tracker struct {
	emitMu sync.Mutex

	mu      sync.RWMutex
	state   domain.AvailabilityState
	lastErr error

	transitions notify.Hub[domain.Transition]
}

// NewTracker creates a Tracker in the loading state.
func NewTracker() *Tracker {
	return &Tracker{state: domain.StateLoading}
}

// State returns the current state.
func (t *Tracker) State() domain.AvailabilityState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// LastError returns the most recently recorded error, or nil.
func (t *Tracker) LastError() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastErr
}

// SetState moves the tracker to s and records err as the last error.
// Setting the current state again with no error, while no error is recorded, does nothing.
func (t *Tracker) SetState(s domain.AvailabilityState, err error) {
	t.emitMu.Lock()
	defer t.emitMu.Unlock()

	t.mu.Lock()
	if s == t.state && err == nil && t.lastErr == nil {
		t.mu.Unlock()
		return
	}
	prev := t.state
	t.state = s
	t.lastErr = err
	t.mu.Unlock()

	t.transitions.Emit(domain.Transition{Previous: prev, Current: s, Err: err})
}

// SetError records err and enters the error state.
// When already in the error state, a transition is still emitted so observers see the new error.
func (t *Tracker) SetError(err error) {
	t.emitMu.Lock()
	defer t.emitMu.Unlock()

	t.mu.Lock()
	prev := t.state
	t.state = domain.StateError
	t.lastErr = err
	t.mu.Unlock()

	t.transitions.Emit(domain.Transition{Previous: prev, Current: domain.StateError, Err: err})
}

// ClearError forgets the last error without changing state. It never emits.
func (t *Tracker) ClearError() {
	t.emitMu.Lock()
	defer t.emitMu.Unlock()

	t.mu.Lock()
	t.lastErr = nil
	t.mu.Unlock()
}

// Subscribe registers fn for transitions and returns a function that unregisters it.
func (t *Tracker) Subscribe(fn func(domain.Transition)) func() {
	return t.transitions.Subscribe(fn)
}
