// Package manifest reads dependency and version information from unit directories.
//
// Two dialects are supported. The declarative dialect is the kind's XML
// manifest (stack.xml or manifest.xml). The legacy dialect is a CMakeLists.txt
// carrying a make_distribution call, which only ever supplies a version.
package manifest

import (
	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/alessandro-aglietti/rospkg/internal/core/ports"
)

// dialect extracts unit metadata from one manifest format.
// found is false when the directory carries no file of that format.
type dialect interface {
	depends(kind domain.Kind, dir string) (deps []string, found bool, err error)
	version(kind domain.Kind, dir string) (version string, found bool, err error)
}

// Reader implements ports.ManifestReader by consulting the declarative
// dialect first and falling back to the legacy one.
type Reader struct {
	dialects []dialect
}

var _ ports.ManifestReader = (*Reader)(nil)

// NewReader creates a Reader for the declarative and legacy dialects.
func NewReader() *Reader {
	return &Reader{dialects: []dialect{xmlDialect{}, cmakeDialect{}}}
}

// DirectDepends returns the dependency names declared in dir, verbatim and in order.
// A directory without any manifest declares no dependencies.
func (r *Reader) DirectDepends(kind domain.Kind, dir string) ([]string, error) {
	for _, d := range r.dialects {
		deps, found, err := d.depends(kind, dir)
		if err != nil {
			return nil, err
		}
		if found {
			return deps, nil
		}
	}
	return []string{}, nil
}

// Version returns the version declared in dir.
// The first dialect yielding a non-empty version wins; ok is false when none does.
func (r *Reader) Version(kind domain.Kind, dir string) (string, bool, error) {
	for _, d := range r.dialects {
		v, found, err := d.version(kind, dir)
		if err != nil {
			return "", false, err
		}
		if found && v != "" {
			return v, true, nil
		}
	}
	return "", false, nil
}
