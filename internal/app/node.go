package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/michellab/protopack/internal/adapters/env"       //nolint:depguard // Wired in app layer
	"github.com/michellab/protopack/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/michellab/protopack/internal/adapters/prefix"    //nolint:depguard // Wired in app layer
	"github.com/michellab/protopack/internal/adapters/recipe"    //nolint:depguard // Wired in app layer
	"github.com/michellab/protopack/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/michellab/protopack/internal/core/ports"
	"github.com/michellab/protopack/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer
// needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App node.
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			recipe.NodeID,
			scheduler.NodeID,
			prefix.NodeID,
			env.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.RecipeLoader](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			environment, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, sched, store, environment, tel), nil
		},
	})

	// Components node.
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}
