package constraints

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/core/ports"
)

// NodeID is the unique identifier for the constraint loader Graft node.
const NodeID graft.ID = "adapter.constraint_loader"

func init() {
	graft.Register(graft.Node[ports.ConstraintLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConstraintLoader, error) {
			return NewLoader(), nil
		},
	})
}
