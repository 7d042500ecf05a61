package registry

import (
	"context"

	"github.com/alessandro-aglietti/rospkg/internal/adapters/cache"    //nolint:depguard // Wired in engine wiring
	"github.com/alessandro-aglietti/rospkg/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"github.com/alessandro-aglietti/rospkg/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"github.com/alessandro-aglietti/rospkg/internal/adapters/manifest" //nolint:depguard // Wired in engine wiring
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the registry factory Graft node.
const NodeID graft.ID = "engine.registry_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.CrawlerNodeID,
			cache.NodeID,
			manifest.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			crawler, err := graft.Dep[ports.Crawler](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.IndexCache](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(crawler, store, reader, log), nil
		},
	})
}
