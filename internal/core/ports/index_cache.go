package ports

import "github.com/alessandro-aglietti/rospkg/internal/core/domain"

// IndexCache persists name indexes between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=index_cache.go -destination=mocks/mock_index_cache.go -package=mocks
type IndexCache interface {
	// Load returns the cached index for the kind and search config.
	// Returns nil, nil if no cache exists or it was built for a different search config.
	// Returns an error if the cache exists but cannot be read or decoded.
	Load(kind domain.Kind, search domain.SearchConfig) (*domain.NameIndex, error)

	// Store writes the index, replacing any previous cache for the same kind and search config.
	Store(kind domain.Kind, search domain.SearchConfig, index *domain.NameIndex) error

	// Clear removes every cache file.
	Clear() error
}
