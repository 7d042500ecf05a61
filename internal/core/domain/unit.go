package domain

// Unit is a discovered stack or package.
type Unit struct {
	Kind Kind

	// Name is the unit's directory basename.
	Name string

	// Path is the absolute directory the unit is rooted at.
	Path string

	// Depends lists direct dependency names exactly as the manifest declares them.
	Depends []string

	// Version is the version string read from the manifest, if HasVersion is set.
	Version    string
	HasVersion bool
}
