// Package cache implements the on-disk name index cache.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.IndexCache = (*Store)(nil)

// Store implements ports.IndexCache using one YAML file per kind and search config.
type Store struct {
	dir string
}

// record is the on-disk layout of a cache file.
type record struct {
	Kind        string   `yaml:"kind"`
	Fingerprint string   `yaml:"fingerprint"`
	SearchPaths []string `yaml:"search_paths"`
	Entries     []entry  `yaml:"entries"`
}

type entry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// NewStore creates a Store that keeps its files in dir.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Path returns the cache file used for the kind and search config.
func (s *Store) Path(kind domain.Kind, search domain.SearchConfig) string {
	name := kind.CachePrefix() + "-" + search.Fingerprint() + domain.CacheFileExt
	return filepath.Join(s.dir, name)
}

// Load reads the cached index for the kind and search config.
func (s *Store) Load(kind domain.Kind, search domain.SearchConfig) (*domain.NameIndex, error) {
	path := s.Path(kind, search)
	//nolint:gosec // Path is built from the configured cache dir and a hex fingerprint
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheReadFailed, err.Error()), "path", path)
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, err.Error()), "path", path)
	}

	// Fingerprints can collide; the recorded paths are authoritative.
	if rec.Kind != kind.String() || !search.Equal(rec.SearchPaths) {
		return nil, nil
	}

	idx := domain.NewNameIndex()
	for _, e := range rec.Entries {
		if e.Name == "" || e.Path == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "entry without name or path"), "path", path)
		}
		idx.Add(e.Name, e.Path)
	}
	return idx, nil
}

// Store writes the index, replacing any previous file for the same kind and search config.
// The file is written to a temporary name and renamed into place.
func (s *Store) Store(kind domain.Kind, search domain.SearchConfig, index *domain.NameIndex) error {
	rec := record{
		Kind:        kind.String(),
		Fingerprint: search.Fingerprint(),
		SearchPaths: search.Paths(),
		Entries:     make([]entry, 0, index.Len()),
	}
	for name, path := range index.All() {
		rec.Entries = append(rec.Entries, entry{Name: name, Path: path})
	}

	data, err := yaml.Marshal(&rec)
	if err != nil {
		return zerr.Wrap(domain.ErrCacheWriteFailed, err.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheCreateFailed, err.Error()), "dir", s.dir)
	}

	path := s.Path(kind, search)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", path)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCacheWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// Clear removes every index cache file in the cache directory.
// Other files sharing the directory are left alone.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrCacheReadFailed, err.Error()), "dir", s.dir)
	}

	var errs error
	for _, e := range entries {
		if e.IsDir() || !isCacheFile(e.Name()) {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove index cache"), "path", path))
		}
	}
	return errs
}

func isCacheFile(name string) bool {
	if !strings.HasSuffix(name, domain.CacheFileExt) {
		return false
	}
	return strings.HasPrefix(name, domain.RosstackCacheName+"-") ||
		strings.HasPrefix(name, domain.RospackCacheName+"-")
}
