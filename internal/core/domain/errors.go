package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrResourceNotFound is returned when a unit name is not present in the index.
	ErrResourceNotFound = zerr.New("resource not found")

	// ErrInvalidArgument is returned when a call is made with a malformed argument shape.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrParseFailed is returned when a manifest is present but a required value is missing or malformed.
	ErrParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestReadFailed is returned when a manifest file exists but cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrCacheReadFailed is returned when the index cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read index cache")

	// ErrCacheCorrupt is returned when the index cache file cannot be decoded.
	ErrCacheCorrupt = zerr.New("index cache is corrupt")

	// ErrCacheWriteFailed is returned when the index cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write index cache")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrConfigLoadFailed is returned when the environment configuration cannot be loaded.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")
)

// NewNotFoundError builds an ErrResourceNotFound for the given kind and name.
// The requested name is attached as "name" metadata.
func NewNotFoundError(kind Kind, name string) error {
	err := zerr.Wrap(ErrResourceNotFound, fmt.Sprintf("%s %q", kind, name))
	return zerr.With(err, "name", name)
}
