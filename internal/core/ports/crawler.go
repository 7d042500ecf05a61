// Package ports defines the core interfaces for the registry.
package ports

import "github.com/alessandro-aglietti/rospkg/internal/core/domain"

// Crawler discovers units on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=crawler.go -destination=mocks/mock_crawler.go -package=mocks
type Crawler interface {
	// Crawl walks every search path in order and returns the index of units of the given kind.
	// Earlier search paths win on name collisions. Unreadable subtrees are skipped.
	Crawl(search domain.SearchConfig, kind domain.Kind) *domain.NameIndex
}
