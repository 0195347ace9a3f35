// Package coordinator ties the caches, trackers and debouncer together around the analysis engine.
package coordinator

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
	"go.trai.ch/vigil/internal/engine/availability"
	"go.trai.ch/vigil/internal/engine/cache"
	"go.trai.ch/vigil/internal/engine/debounce"
	"go.trai.ch/vigil/internal/engine/jobs"
	"go.trai.ch/vigil/internal/engine/preflight"
	"go.trai.ch/vigil/internal/engine/stale"
)

// Deps are the collaborators of a Coordinator.
type Deps struct {
	Engine       ports.Engine
	Reviews      *cache.ReviewCache
	Deltas       *cache.DeltaCache
	Candidates   *cache.CandidateCache
	Jobs         *jobs.Tracker
	Availability *availability.Tracker
	Preflight    *preflight.Orchestrator
	Tracer       ports.Tracer
	Logger       ports.Logger
	// Delay is the quiet period before a changed document is reviewed.
	Delay time.Duration
}

// Coordinator serves analysis results from the caches and calls the engine on a miss.
// All methods are safe for concurrent use.
type Coordinator struct {
	engine       ports.Engine
	reviews      *cache.ReviewCache
	deltas       *cache.DeltaCache
	candidates   *cache.CandidateCache
	invalidators []cache.Invalidator
	jobs         *jobs.Tracker
	availability *availability.Tracker
	preflight    *preflight.Orchestrator
	tracer       ports.Tracer
	logger       ports.Logger
	delay        time.Duration

	debouncer *debounce.Debouncer

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe []func()
}

// New creates a Coordinator. A zero Delay falls back to domain.DefaultDebounceDelay.
func New(d Deps) *Coordinator {
	delay := d.Delay
	if delay <= 0 {
		delay = domain.DefaultDebounceDelay
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		engine:       d.Engine,
		reviews:      d.Reviews,
		deltas:       d.Deltas,
		candidates:   d.Candidates,
		invalidators: []cache.Invalidator{d.Reviews, d.Deltas, d.Candidates},
		jobs:         d.Jobs,
		availability: d.Availability,
		preflight:    d.Preflight,
		tracer:       d.Tracer,
		logger:       d.Logger,
		delay:        delay,
		debouncer:    debounce.New(),
		ctx:          ctx,
		cancel:       cancel,
	}

	c.unsubscribe = append(c.unsubscribe,
		d.Availability.Subscribe(c.logTransition),
		d.Jobs.Subscribe(c.logJob),
	)
	return c
}

// DocumentChanged schedules a review of content once path has been quiet for the debounce delay.
// A later change to the same path replaces the pending review.
func (c *Coordinator) DocumentChanged(path, content string) {
	c.debouncer.Debounce(cache.PathKey(path), func() {
		c.refresh(path, content)
	}, c.delay)
}

// Flush runs the pending review for path now. It reports whether one was pending.
func (c *Coordinator) Flush(path string) bool {
	return c.debouncer.Flush(cache.PathKey(path))
}

// Pending returns the number of documents waiting for their debounce delay.
func (c *Coordinator) Pending() int {
	return c.debouncer.Pending()
}

// refresh reviews content regardless of auto-refactor availability. Candidates are
// only requested while auto-refactor is activated for the file's language.
func (c *Coordinator) refresh(path, content string) {
	if _, err := c.Review(c.ctx, path, content, domain.ReviewWorking); err != nil {
		c.logger.Error(err)
		return
	}

	if _, err := c.Candidates(c.ctx, path, content); err != nil {
		c.logger.Error(err)
	}
}

// Revalidate checks a previously surfaced candidate against the current content.
// It returns the candidate with a corrected range, or false when it is stale.
func (c *Coordinator) Revalidate(content string, candidate domain.RefactorCandidate) (domain.RefactorCandidate, bool) {
	return stale.Revalidate(content, candidate)
}

// DocumentRenamed moves every cached result of oldPath to newPath.
func (c *Coordinator) DocumentRenamed(oldPath, newPath string) {
	c.debouncer.Cancel(cache.PathKey(oldPath))
	for _, inv := range c.invalidators {
		inv.RenamePath(oldPath, newPath)
	}
	c.logger.Debug(fmt.Sprintf("moved cached analysis from %s to %s", oldPath, newPath))
}

// DocumentClosed drops every cached result of path and any pending review.
func (c *Coordinator) DocumentClosed(path string) {
	c.debouncer.Cancel(cache.PathKey(path))
	for _, inv := range c.invalidators {
		inv.RemovePath(path)
	}
	c.logger.Debug(fmt.Sprintf("dropped cached analysis for %s", path))
}

// HandleWatchEvent applies a file system event. Removed and renamed files lose their cached results.
// It reports whether the event changed any state.
func (c *Coordinator) HandleWatchEvent(ev ports.WatchEvent) bool {
	switch ev.Operation {
	case ports.OpRemove, ports.OpRename:
		c.DocumentClosed(ev.Path)
		return true
	default:
		return false
	}
}

// RevokeConsent drops every cached result and pending review and disables auto-refactoring.
func (c *Coordinator) RevokeConsent() {
	c.debouncer.CancelAll()
	for _, inv := range c.invalidators {
		inv.Clear()
	}
	c.availability.SetState(domain.StateDisabled, nil)
	c.logger.Info("analysis consent revoked, cleared all cached results")
}

// RefreshAvailability runs a preflight probe and returns the resulting auto-refactor config.
func (c *Coordinator) RefreshAvailability(ctx context.Context, force bool) domain.AutoRefactorConfig {
	_, cfg := c.preflight.Run(ctx, force)
	return cfg
}

// RunningJobs returns the jobs currently in flight.
func (c *Coordinator) RunningJobs() []domain.Job {
	return c.jobs.Snapshot()
}

// Close cancels pending reviews and in-flight debounced work. It is safe to call more than once.
func (c *Coordinator) Close() {
	c.debouncer.Close()
	c.cancel()
	for _, unsubscribe := range c.unsubscribe {
		unsubscribe()
	}
}

func (c *Coordinator) logTransition(t domain.Transition) {
	switch {
	case t.WentOffline():
		c.logger.Warn("analysis engine went offline")
	case t.NewError():
		c.logger.Warn("auto-refactor is unavailable after an engine error")
	case t.BackOnline():
		c.logger.Info("analysis engine is back online")
	case t.FirstActivation():
		c.logger.Debug("auto-refactor is available")
	default:
		c.logger.Debug(fmt.Sprintf("availability changed from %s to %s", t.Previous, t.Current))
	}
}

func (c *Coordinator) logJob(e jobs.Event) {
	c.logger.Debug(fmt.Sprintf("%s %s for %s", e.Job.Type, e.Kind, e.Job.Path))
}
