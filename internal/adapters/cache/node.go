package cache

import (
	"context"

	"github.com/alessandro-aglietti/rospkg/internal/adapters/config"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the index cache Graft node.
const NodeID graft.ID = "adapter.index_cache"

func init() {
	graft.Register(graft.Node[ports.IndexCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.IndexCache, error) {
			env, err := graft.Dep[*config.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(env.CacheDir()), nil
		},
	})
}
