// Package debounce coalesces bursts of calls for the same key into one delayed execution.
package debounce

import (
	"sync"
	"time"
)

// pending is a scheduled execution. Its address identifies it, so a timer that
// fires after being superseded can tell it is no longer the live one.
type pending struct {
	timer  *time.Timer
	action func()
}

// Debouncer keeps at most one pending execution per key.
type Debouncer struct {
	mu      sync.Mutex
	pending map[string]*pending
	closed  bool
}

// New creates a new Debouncer.
func New() *Debouncer {
	return &Debouncer{
		pending: make(map[string]*pending),
	}
}

// Debounce schedules action to run once delay has elapsed without another
// Debounce call for key. An earlier pending execution for key is canceled.
// The action runs on its own goroutine, never on the caller's.
func (d *Debouncer) Debounce(key string, action func(), delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
	}

	p := &pending{action: action}
	p.timer = time.AfterFunc(delay, func() { d.fire(key, p) })
	d.pending[key] = p
}

// fire runs p if it is still the live execution for key.
func (d *Debouncer) fire(key string, p *pending) {
	d.mu.Lock()
	if d.pending[key] != p {
		// Superseded or canceled after the timer had already fired.
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	if p.action != nil {
		p.action()
	}
}

// Cancel drops the pending execution for key without running it.
// It reports whether anything was pending.
func (d *Debouncer) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.pending[key]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(d.pending, key)
	return true
}

// Flush runs the pending execution for key immediately and blocks until it returns.
// It reports whether anything was pending.
func (d *Debouncer) Flush(key string) bool {
	d.mu.Lock()
	p, ok := d.pending[key]
	if !ok {
		d.mu.Unlock()
		return false
	}
	p.timer.Stop()
	delete(d.pending, key)
	d.mu.Unlock()

	if p.action != nil {
		p.action()
	}
	return true
}

// Pending returns the number of keys with a scheduled execution.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// CancelAll drops every pending execution without running any of them.
func (d *Debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopAllLocked()
}

// Close cancels every pending execution without running it.
// Debounce calls after Close are ignored.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.stopAllLocked()
}

func (d *Debouncer) stopAllLocked() {
	for key, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, key)
	}
}
