package ports

import "github.com/alessandro-aglietti/rospkg/internal/core/domain"

// ManifestReader extracts dependency and version data from a unit directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// DirectDepends returns the dependency names declared in the unit's manifest, in declaration order.
	// A directory without a manifest yields an empty list.
	DirectDepends(kind domain.Kind, dir string) ([]string, error)

	// Version returns the unit's version string. ok is false when no manifest declares one.
	Version(kind domain.Kind, dir string) (version string, ok bool, err error)
}
