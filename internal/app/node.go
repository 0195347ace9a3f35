package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vigil/internal/adapters/analysis"    //nolint:depguard // Wired in app layer
	"go.trai.ch/vigil/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/vigil/internal/adapters/credentials" //nolint:depguard // Wired in app layer
	"go.trai.ch/vigil/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/vigil/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/vigil/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/vigil/internal/adapters/watcher"     //nolint:depguard // Wired in app layer
	"go.trai.ch/vigil/internal/core/ports"
	"go.trai.ch/vigil/internal/engine/availability"
	"go.trai.ch/vigil/internal/engine/cache"
	"go.trai.ch/vigil/internal/engine/jobs"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.HasherNodeID,
			analysis.EngineNodeID,
			credentials.NodeID,
			watcher.WatcherNodeID,
			telemetry.TracerNodeID,
			cache.ReviewNodeID,
			cache.DeltaNodeID,
			cache.CandidateNodeID,
			jobs.NodeID,
			availability.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.ContentHasher](ctx)
	if err != nil {
		return nil, err
	}
	engine, err := graft.Dep[ports.Engine](ctx)
	if err != nil {
		return nil, err
	}
	creds, err := graft.Dep[ports.CredentialProvider](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := graft.Dep[*cache.ReviewCache](ctx)
	if err != nil {
		return nil, err
	}
	deltas, err := graft.Dep[*cache.DeltaCache](ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := graft.Dep[*cache.CandidateCache](ctx)
	if err != nil {
		return nil, err
	}
	tracker, err := graft.Dep[*jobs.Tracker](ctx)
	if err != nil {
		return nil, err
	}
	avail, err := graft.Dep[*availability.Tracker](ctx)
	if err != nil {
		return nil, err
	}

	return New(Deps{
		ConfigLoader: loader,
		Logger:       log,
		Hasher:       hasher,
		Engine:       engine,
		Credentials:  creds,
		Watcher:      w,
		Tracer:       tracer,
		Reviews:      reviews,
		Deltas:       deltas,
		Candidates:   candidates,
		Jobs:         tracker,
		Availability: avail,
	}), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: a, Logger: log, Tracer: tracer}, nil
}
