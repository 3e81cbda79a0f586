package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/strata/internal/adapters/artifacts"
	"go.trai.ch/strata/internal/adapters/constraints"
	"go.trai.ch/strata/internal/adapters/logger"
	"go.trai.ch/strata/internal/adapters/shell"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/planner"
	"go.trai.ch/strata/internal/engine/resolver"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			constraints.NodeID,
			shell.NodeID,
			artifacts.NodeID,
			logger.NodeID,
			resolver.NodeID,
			planner.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			constraintLoader, err := graft.Dep[ports.ConstraintLoader](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.StepRunner](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ArtifactStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			pln, err := graft.Dep[*planner.Planner](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(constraintLoader, runner, store, log, res, pln), nil
		},
	})
}
