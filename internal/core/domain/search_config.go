package domain

import (
	"path/filepath"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// SearchConfig is the ordered list of directories a registry crawls.
// Earlier paths take precedence when the same unit name appears more than once.
type SearchConfig struct {
	paths []string
}

// NewSearchConfig builds a SearchConfig from a root path followed by extra paths.
// Empty entries are dropped and every path is made absolute and cleaned.
// Duplicates are kept so that the fingerprint reflects exactly what was supplied.
func NewSearchConfig(root string, extra ...string) SearchConfig {
	paths := make([]string, 0, len(extra)+1)
	for _, p := range append([]string{root}, extra...) {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		paths = append(paths, filepath.Clean(p))
	}
	return SearchConfig{paths: paths}
}

// Paths returns a copy of the ordered search paths.
func (c SearchConfig) Paths() []string {
	return slices.Clone(c.paths)
}

// Len returns the number of search paths.
func (c SearchConfig) Len() int {
	return len(c.paths)
}

// Equal reports whether both configs hold the same paths in the same order.
func (c SearchConfig) Equal(paths []string) bool {
	return slices.Equal(c.paths, paths)
}

// Fingerprint returns a stable hex digest of the ordered path list.
// Two configs share a fingerprint only if they list the same paths in the same order.
func (c SearchConfig) Fingerprint() string {
	h := xxhash.New()
	for _, p := range c.paths {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
