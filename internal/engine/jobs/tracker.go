// Package jobs tracks in-flight engine work such as delta analyses.
package jobs

import (
	"cmp"
	"slices"
	"sync"

	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/engine/notify"
)

// EventKind tells whether a job started or finished.
type EventKind uint8

const (
	// EventStarted is emitted when a job enters the running set.
	EventStarted EventKind = iota
	// EventFinished is emitted when a job leaves the running set.
	EventFinished
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	if k == EventFinished {
		return "finished"
	}
	return "started"
}

// Event is a job-started or job-finished notification.
type Event struct {
	Job  domain.Job
	Kind EventKind
}

// Tracker is the registry of running jobs. Jobs are identified by value.
//
// Mutations and their notifications are serialized with emitMu, so subscribers
// see events in mutation order. Subscribers run with emitMu held and must not
// call Add or Remove synchronously; reading through Snapshot or Running is fine.
type Tracker struct {
	emitMu sync.Mutex

	mu      sync.RWMutex
	running map[domain.Job]struct{}

	events notify.Hub[Event]
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		running: make(map[domain.Job]struct{}),
	}
}

// Add inserts job. It reports whether the job was new; only then is EventStarted emitted.
func (t *Tracker) Add(job domain.Job) bool {
	t.emitMu.Lock()
	defer t.emitMu.Unlock()

	t.mu.Lock()
	_, exists := t.running[job]
	if !exists {
		t.running[job] = struct{}{}
	}
	t.mu.Unlock()

	if exists {
		return false
	}
	t.events.Emit(Event{Job: job, Kind: EventStarted})
	return true
}

// Remove deletes job. It reports whether the job was running; only then is EventFinished emitted.
func (t *Tracker) Remove(job domain.Job) bool {
	t.emitMu.Lock()
	defer t.emitMu.Unlock()

	t.mu.Lock()
	_, exists := t.running[job]
	delete(t.running, job)
	t.mu.Unlock()

	if !exists {
		return false
	}
	t.events.Emit(Event{Job: job, Kind: EventFinished})
	return true
}

// Snapshot returns a copy of the running set ordered by path, then type.
func (t *Tracker) Snapshot() []domain.Job {
	t.mu.RLock()
	out := make([]domain.Job, 0, len(t.running))
	for job := range t.running {
		out = append(out, job)
	}
	t.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.Job) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Type, b.Type))
	})
	return out
}

// Running reports whether a job of type jt is running for path.
func (t *Tracker) Running(path string, jt domain.JobType) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.running[domain.NewJob(jt, path)]
	return ok
}

// Track runs fn as job. The job is removed when fn returns, whatever the outcome.
// If an identical job is already running, fn still runs but the job is left to its owner.
func (t *Tracker) Track(job domain.Job, fn func() error) error {
	if t.Add(job) {
		defer t.Remove(job)
	}
	return fn()
}

// Subscribe registers fn for job events and returns a function that unregisters it.
func (t *Tracker) Subscribe(fn func(Event)) func() {
	return t.events.Subscribe(fn)
}
