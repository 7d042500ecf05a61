package logger

import (
	"context"

	"github.com/alessandro-aglietti/rospkg/internal/adapters/config"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			env, err := graft.Dep[*config.Environment](ctx)
			if err != nil {
				return nil, err
			}
			l := New()
			l.SetJSON(env.JSONLogs())
			return l, nil
		},
	})
}
