package scheduler

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/michellab/protopack/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"github.com/michellab/protopack/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/michellab/protopack/internal/adapters/prefix"    //nolint:depguard // Wired in engine wiring
	"github.com/michellab/protopack/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"github.com/michellab/protopack/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/michellab/protopack/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			prefix.NodeID,
			fs.HasherNodeID,
			fs.CopierNodeID,
			fs.VerifierNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.TreeHasher](ctx)
			if err != nil {
				return nil, err
			}

			copier, err := graft.Dep[ports.Copier](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(executor, store, hasher, copier, verifier, tel, log), nil
		},
	})
}
