// Package registry answers name, path, version and dependency queries for
// stacks and packages found under an ordered set of search paths.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
)

// Registry indexes the units of one kind under a SearchConfig.
//
// The index is built on first use, from the disk cache when it matches the
// search config and by crawling otherwise. A Registry is not safe for
// concurrent use.
type Registry struct {
	kind    domain.Kind
	search  domain.SearchConfig
	crawler ports.Crawler
	cache   ports.IndexCache
	reader  ports.ManifestReader
	logger  ports.Logger

	index *domain.NameIndex
	// fromDisk is set while the index is a cache hit not yet confirmed by a crawl.
	fromDisk bool
	direct   map[string][]string
}

// New creates a Registry. Nothing is read from disk until the first query.
func New(
	kind domain.Kind,
	search domain.SearchConfig,
	crawler ports.Crawler,
	cache ports.IndexCache,
	reader ports.ManifestReader,
	logger ports.Logger,
) *Registry {
	return &Registry{
		kind:    kind,
		search:  search,
		crawler: crawler,
		cache:   cache,
		reader:  reader,
		logger:  logger,
		direct:  make(map[string][]string),
	}
}

// Kind returns the kind of unit the registry indexes.
func (r *Registry) Kind() domain.Kind {
	return r.kind
}

// Search returns the search config the registry crawls.
func (r *Registry) Search() domain.SearchConfig {
	return r.search
}

// List returns every known unit name in discovery order.
func (r *Registry) List() []string {
	return r.load().Names()
}

// Path returns the directory of the named unit.
func (r *Registry) Path(name string) (string, error) {
	return r.lookup(name)
}

// Version returns the version declared by the named unit's manifests.
// ok is false when neither manifest dialect declares one.
func (r *Registry) Version(name string) (version string, ok bool, err error) {
	path, err := r.lookup(name)
	if err != nil {
		return "", false, err
	}
	return r.reader.Version(r.kind, path)
}

// DirectDepends returns the dependencies the named unit's manifest declares,
// verbatim and in declaration order.
func (r *Registry) DirectDepends(name string) ([]string, error) {
	deps, err := r.directDepends(name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(deps), nil
}

// Depends returns the transitive dependencies of the named unit without duplicates.
// A dependency that names no known unit fails with ErrResourceNotFound
// carrying "required_by" metadata.
func (r *Registry) Depends(name string) ([]string, error) {
	return domain.NewDependencyGraph(r.directDepends).Closure(name)
}

// Unit returns everything known about the named unit.
func (r *Registry) Unit(name string) (*domain.Unit, error) {
	path, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	deps, err := r.DirectDepends(name)
	if err != nil {
		return nil, err
	}
	version, ok, err := r.reader.Version(r.kind, path)
	if err != nil {
		return nil, err
	}
	return &domain.Unit{
		Kind:       r.kind,
		Name:       name,
		Path:       path,
		Depends:    deps,
		Version:    version,
		HasVersion: ok,
	}, nil
}

// Contents returns the names of units located at or below dir, in discovery order.
func (r *Registry) Contents(dir string) []string {
	dir = filepath.Clean(dir)
	var names []string
	for name, path := range r.load().All() {
		if within(dir, path) {
			names = append(names, name)
		}
	}
	return names
}

// Refresh discards the index and dependency data and crawls again.
func (r *Registry) Refresh() {
	r.rebuild()
}

func (r *Registry) directDepends(name string) ([]string, error) {
	if deps, ok := r.direct[name]; ok {
		return deps, nil
	}
	path, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	deps, err := r.reader.DirectDepends(r.kind, path)
	if err != nil {
		return nil, err
	}
	r.direct[name] = deps
	return deps, nil
}

// lookup resolves name to a path. A miss, or a hit whose directory no longer
// holds a manifest, against a cached index triggers one crawl before failing.
func (r *Registry) lookup(name string) (string, error) {
	idx := r.load()
	path, ok := idx.Lookup(name)
	if ok && (!r.fromDisk || r.present(path)) {
		return path, nil
	}

	if r.fromDisk {
		r.rebuild()
		if path, ok := r.index.Lookup(name); ok {
			return path, nil
		}
	}
	return "", domain.NewNotFoundError(r.kind, name)
}

func (r *Registry) load() *domain.NameIndex {
	if r.index != nil {
		return r.index
	}

	idx, err := r.cache.Load(r.kind, r.search)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("ignoring %s index cache: %v", r.kind, err))
	}
	if idx != nil {
		r.index = idx
		r.fromDisk = true
		return idx
	}

	r.rebuild()
	return r.index
}

func (r *Registry) rebuild() {
	r.index = r.crawler.Crawl(r.search, r.kind)
	r.fromDisk = false
	clear(r.direct)

	if err := r.cache.Store(r.kind, r.search, r.index); err != nil {
		r.logger.Warn(fmt.Sprintf("%s index cache not written: %v", r.kind, err))
	}
}

func (r *Registry) present(path string) bool {
	info, err := os.Stat(filepath.Join(path, r.kind.MarkerFile()))
	return err == nil && !info.IsDir()
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
