package app

import (
	"context"

	"github.com/alessandro-aglietti/rospkg/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"github.com/alessandro-aglietti/rospkg/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/alessandro-aglietti/rospkg/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
	"github.com/alessandro-aglietti/rospkg/internal/engine/registry"
	"github.com/grindlemire/graft"
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
			registry.NodeID,
			cache.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	env, err := graft.Dep[*config.Environment](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[*registry.Factory](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.IndexCache](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(env.ROSRoot, env.ROSPackagePath, factory, store, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
