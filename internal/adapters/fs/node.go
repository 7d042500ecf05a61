package fs

import (
	"context"

	"github.com/alessandro-aglietti/rospkg/internal/adapters/config"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
	"github.com/grindlemire/graft"
)

// CrawlerNodeID is the unique identifier for the crawler Graft node.
const CrawlerNodeID graft.ID = "adapter.fs.crawler"

func init() {
	graft.Register(graft.Node[ports.Crawler]{
		ID:        CrawlerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Crawler, error) {
			env, err := graft.Dep[*config.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewCrawler(env.CrawlIgnore), nil
		},
	})
}
