// Package fs provides the file system crawler that discovers stacks and packages.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

var _ ports.Crawler = (*Crawler)(nil)

// DefaultIgnores are the basename patterns skipped when no others are configured.
var DefaultIgnores = []string{".*"}

// Crawler walks search paths looking for unit marker files.
type Crawler struct {
	ignores []string
}

// NewCrawler creates a new Crawler that skips directories whose basename
// matches any of the given doublestar patterns.
func NewCrawler(ignores []string) *Crawler {
	return &Crawler{ignores: ignores}
}

// Crawl walks every search path and returns the merged index.
// Search paths are crawled concurrently, but merged in order so that the
// first path containing a name wins.
func (c *Crawler) Crawl(search domain.SearchConfig, kind domain.Kind) *domain.NameIndex {
	roots := search.Paths()
	indexes := make([]*domain.NameIndex, len(roots))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, root := range roots {
		g.Go(func() error {
			indexes[i] = c.crawlRoot(root, kind.MarkerFile())
			return nil
		})
	}
	_ = g.Wait()

	merged := domain.NewNameIndex()
	for _, idx := range indexes {
		merged.Merge(idx)
	}
	return merged
}

// crawlRoot walks a single search path. Missing or unreadable roots yield an empty index.
func (c *Crawler) crawlRoot(root, marker string) *domain.NameIndex {
	idx := domain.NewNameIndex()
	visited := make(map[string]struct{})
	c.walk(root, marker, idx, visited)
	return idx
}

func (c *Crawler) walk(dir, marker string, idx *domain.NameIndex, visited map[string]struct{}) {
	// Symlinks are followed, so loops are cut on the resolved path.
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return
	}
	if _, seen := visited[resolved]; seen {
		return
	}
	visited[resolved] = struct{}{}

	if hasFile(dir, domain.IgnoreMarkerName) {
		return
	}

	if hasFile(dir, marker) {
		idx.Add(filepath.Base(dir), dir)
		return
	}

	if hasFile(dir, domain.NoSubdirsMarkerName) {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if c.shouldSkip(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isDir(entry, path) {
			continue
		}
		c.walk(path, marker, idx, visited)
	}
}

// shouldSkip checks if a directory basename matches an ignore pattern.
func (c *Crawler) shouldSkip(name string) bool {
	for _, pattern := range c.ignores {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// isDir reports whether entry is a directory, resolving symlinks.
func isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
