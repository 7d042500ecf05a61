package registry

import (
	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
)

// Factory builds registries that share one set of adapters.
type Factory struct {
	crawler ports.Crawler
	cache   ports.IndexCache
	reader  ports.ManifestReader
	logger  ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(
	crawler ports.Crawler,
	cache ports.IndexCache,
	reader ports.ManifestReader,
	logger ports.Logger,
) *Factory {
	return &Factory{
		crawler: crawler,
		cache:   cache,
		reader:  reader,
		logger:  logger,
	}
}

// New creates a Registry for kind over search.
func (f *Factory) New(kind domain.Kind, search domain.SearchConfig) *Registry {
	return New(kind, search, f.crawler, f.cache, f.reader, f.logger)
}
