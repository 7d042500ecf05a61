package domain

// Kind distinguishes the two families of units a registry can index.
type Kind int

const (
	// KindStack indexes directories marked with a stack.xml manifest.
	KindStack Kind = iota
	// KindPackage indexes directories marked with a manifest.xml manifest.
	KindPackage
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindPackage:
		return "package"
	default:
		return "unknown"
	}
}

// MarkerFile returns the manifest filename whose presence makes a directory a unit of this kind.
func (k Kind) MarkerFile() string {
	if k == KindPackage {
		return ManifestFileName
	}
	return StackFileName
}

// DependAttr returns the attribute of a <depend> element that names a unit of this kind.
func (k Kind) DependAttr() string {
	if k == KindPackage {
		return "package"
	}
	return "stack"
}

// CachePrefix returns the filename prefix used for this kind's index cache.
func (k Kind) CachePrefix() string {
	if k == KindPackage {
		return RospackCacheName
	}
	return RosstackCacheName
}
