package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vigil/internal/adapters/fs" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/vigil/internal/core/ports"
)

const (
	// ReviewNodeID is the unique identifier for the review cache Graft node.
	ReviewNodeID graft.ID = "engine.cache.review"
	// DeltaNodeID is the unique identifier for the delta cache Graft node.
	DeltaNodeID graft.ID = "engine.cache.delta"
	// CandidateNodeID is the unique identifier for the refactor candidate cache Graft node.
	CandidateNodeID graft.ID = "engine.cache.candidates"
)

func init() {
	graft.Register(graft.Node[*ReviewCache]{
		ID:        ReviewNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*ReviewCache, error) {
			hasher, err := graft.Dep[ports.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewReviewCache(hasher), nil
		},
	})

	graft.Register(graft.Node[*DeltaCache]{
		ID:        DeltaNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*DeltaCache, error) {
			hasher, err := graft.Dep[ports.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewDeltaCache(hasher), nil
		},
	})

	graft.Register(graft.Node[*CandidateCache]{
		ID:        CandidateNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (*CandidateCache, error) {
			hasher, err := graft.Dep[ports.ContentHasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewCandidateCache(hasher), nil
		},
	})
}
