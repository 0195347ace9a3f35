package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/vigil/internal/adapters/fs"
	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
	"go.trai.ch/vigil/internal/engine/cache"
	"go.trai.ch/vigil/internal/engine/coordinator"
	"go.trai.ch/vigil/internal/engine/preflight"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Verbose bool
	// Force bypasses any caching in the engine's preflight probe.
	Force bool
}

// Watch follows file changes below root, feeding them to the coordinator until ctx is
// cancelled or the watcher stops delivering events.
func (a *App) Watch(ctx context.Context, root string, opts WatchOptions) error {
	cfg, err := a.setup(opts.Verbose)
	if err != nil {
		return err
	}

	coord := coordinator.New(coordinator.Deps{
		Engine:       a.engine,
		Reviews:      a.reviews,
		Deltas:       a.deltas,
		Candidates:   a.candidates,
		Jobs:         a.jobs,
		Availability: a.availability,
		Preflight:    preflight.New(a.engine, a.availability, a.credentials, cfg.RefactorVisible, a.logger),
		Tracer:       a.tracer,
		Logger:       a.logger,
		Delay:        cfg.Debounce,
	})
	defer coord.Close()

	unsubscribe := a.reviews.Subscribe(a.logCacheUpdate)
	defer unsubscribe()

	refactor := coord.RefreshAvailability(ctx, opts.Force)
	a.logger.Debug(fmt.Sprintf("auto-refactor status: %s (activated=%t)", refactor.Status, refactor.Activated))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, root, cfg.WatchSkip); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherStartFailed.Error()), "root", root)
	}
	a.logger.Info(fmt.Sprintf("watching %s", root))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		for ev := range a.watcher.Events() {
			a.handleEvent(coord, ev)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.watcher.Stop()
	})

	return g.Wait()
}

func (a *App) handleEvent(coord *coordinator.Coordinator, ev ports.WatchEvent) {
	if coord.HandleWatchEvent(ev) {
		a.logger.Debug(fmt.Sprintf("%s %s", ev.Operation, ev.Path))
		return
	}

	if info, err := os.Stat(ev.Path); err != nil || !info.Mode().IsRegular() {
		return
	}

	content, err := fs.ReadDocument(ev.Path)
	if err != nil {
		a.logger.Warn(err.Error())
		return
	}
	a.logger.Debug(fmt.Sprintf("%s %s (%s)", ev.Operation, ev.Path, a.hasher.Digest(content).Short()))
	coord.DocumentChanged(ev.Path, content)
}

func (a *App) logCacheUpdate(u cache.Update) {
	switch u.Kind {
	case cache.UpdateStored:
		a.logger.Info(fmt.Sprintf("reviewed %s", u.Key))
	case cache.UpdateMoved:
		a.logger.Debug(fmt.Sprintf("review moved from %s to %s", u.OldKey, u.Key))
	default:
		a.logger.Debug(fmt.Sprintf("review %s: %s", u.Kind, u.Key))
	}
}
