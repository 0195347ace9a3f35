package analysis

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vigil/internal/core/ports"
)

// EngineNodeID is the unique identifier for the analysis engine Graft node.
const EngineNodeID graft.ID = "adapter.analysis.engine"

func init() {
	graft.Register(graft.Node[ports.Engine]{
		ID:        EngineNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Engine, error) {
			return NewOfflineEngine(), nil
		},
	})
}
