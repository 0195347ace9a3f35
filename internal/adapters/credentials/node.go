package credentials

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vigil/internal/core/ports"
)

// NodeID is the unique identifier for the credential provider Graft node.
const NodeID graft.ID = "adapter.credentials"

func init() {
	graft.Register(graft.Node[ports.CredentialProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CredentialProvider, error) {
			return NewEnvProvider(), nil
		},
	})
}
