package domain

import (
	"os"
	"path/filepath"
)

const (
	// StackFileName marks a directory as a stack and holds its declarative manifest.
	StackFileName = "stack.xml"

	// ManifestFileName marks a directory as a package and holds its declarative manifest.
	ManifestFileName = "manifest.xml"

	// CMakeFileName is the legacy build script that may carry a make_distribution call.
	CMakeFileName = "CMakeLists.txt"

	// IgnoreMarkerName excludes a directory and its whole subtree from discovery.
	IgnoreMarkerName = "CATKIN_IGNORE"

	// NoSubdirsMarkerName stops the crawler from descending below a directory.
	NoSubdirsMarkerName = "rospack_nosubdirs"

	// RosstackCacheName is the filename prefix of the stack index cache.
	RosstackCacheName = "rosstack_cache"

	// RospackCacheName is the filename prefix of the package index cache.
	RospackCacheName = "rospack_cache"

	// CacheFileExt is the extension of index cache files.
	CacheFileExt = ".yaml"

	// DefaultHomeDirName is the per-user directory used when ROS_HOME is unset.
	DefaultHomeDirName = ".ros"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultHomePath returns ~/.ros, or .ros relative to the working directory
// when the user home cannot be determined.
func DefaultHomePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultHomeDirName
	}
	return filepath.Join(home, DefaultHomeDirName)
}
