// Package preflight probes the analysis engine for supported languages and
// derives whether auto-refactoring can be offered.
package preflight

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports"
	"go.trai.ch/vigil/internal/engine/availability"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const flightKey = "preflight"

type outcome struct {
	response *domain.PreflightResponse
	config   domain.AutoRefactorConfig
}

// Orchestrator runs preflight probes against the engine and caches the last response.
type Orchestrator struct {
	engine      ports.Engine
	tracker     *availability.Tracker
	credentials ports.CredentialProvider
	logger      ports.Logger
	visible     bool

	flight singleflight.Group

	mu       sync.RWMutex
	response *domain.PreflightResponse
	config   domain.AutoRefactorConfig
}

// New creates an Orchestrator. visible mirrors the user setting for showing auto-refactoring.
func New(
	engine ports.Engine,
	tracker *availability.Tracker,
	credentials ports.CredentialProvider,
	visible bool,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		engine:      engine,
		tracker:     tracker,
		credentials: credentials,
		logger:      logger,
		visible:     visible,
		config:      domain.AutoRefactorConfig{Visible: visible, Status: domain.StateLoading},
	}
}

// Run probes the engine. Concurrent calls share a single probe and its result.
// The shared probe keeps the values of ctx but is not cancelled with it.
// Probe failures are recorded on the availability tracker and
// never returned.
func (o *Orchestrator) Run(ctx context.Context, force bool) (*domain.PreflightResponse, domain.AutoRefactorConfig) {
	shared := context.WithoutCancel(ctx)
	v, _, _ := o.flight.Do(flightKey, func() (any, error) {
		return o.probe(shared, force), nil
	})
	out, _ := v.(outcome)
	return out.response, out.config
}

func (o *Orchestrator) probe(ctx context.Context, force bool) outcome {
	o.tracker.SetState(domain.StateLoading, nil)

	resp, err := o.engine.Preflight(ctx, force)

	var out outcome
	switch {
	case err != nil:
		err = zerr.Wrap(err, domain.ErrPreflightFailed.Error())
		o.logger.Error(err)
		out.config = o.offlineConfig(domain.StateError)
		o.store(out)
		o.tracker.SetError(err)
	case resp == nil:
		o.logger.Debug("preflight: engine reported auto-refactor as unavailable")
		out.config = o.offlineConfig(domain.StateOffline)
		o.store(out)
		o.tracker.SetState(domain.StateOffline, nil)
	default:
		has := o.credentials.HasCredential()
		o.logger.Debug(fmt.Sprintf("preflight: engine %s supports %d file types", resp.Version, len(resp.FileTypes)))
		out.response = resp
		out.config = domain.AutoRefactorConfig{
			Activated: has,
			Visible:   o.visible,
			Disabled:  !has,
			Status:    domain.StateEnabled,
		}
		o.store(out)
		o.tracker.SetState(domain.StateEnabled, nil)
	}
	return out
}

func (o *Orchestrator) offlineConfig(status domain.AvailabilityState) domain.AutoRefactorConfig {
	return domain.AutoRefactorConfig{Visible: o.visible, Status: status}
}

func (o *Orchestrator) store(out outcome) {
	o.mu.Lock()
	o.response = out.response
	o.config = out.config
	o.mu.Unlock()
}

// Response returns the cached preflight response, probing the engine first if nothing is cached.
// It returns nil when the engine does not offer the feature.
func (o *Orchestrator) Response(ctx context.Context) *domain.PreflightResponse {
	if resp := o.Cached(); resp != nil {
		return resp
	}
	resp, _ := o.Run(ctx, false)
	return resp
}

// Cached returns the last successful preflight response without probing.
func (o *Orchestrator) Cached() *domain.PreflightResponse {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.response
}

// IsSupportedLanguage reports whether the cached response lists ext as a supported file type.
// It never probes; with nothing cached it returns false.
func (o *Orchestrator) IsSupportedLanguage(ext string) bool {
	return o.Cached().SupportsFileType(ext)
}

// Config returns the auto-refactor config derived from the last probe.
func (o *Orchestrator) Config() domain.AutoRefactorConfig {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.config
}
