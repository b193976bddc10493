package app

import (
	"path/filepath"
	"runtime"
	"strings"
)

// localRootsPath is the path a LocalRoots panel lists: the filesystem root
// on Unix, or fsgw's drive-enumeration pseudo-root on Windows (see
// internal/fsgw's drives_windows.go / drives_other.go).
func localRootsPath() string {
	if runtime.GOOS == "windows" {
		return `\\`
	}
	return "/"
}

// parentDir returns the directory containing path, used to refresh a
// listing after a Filesystem Gateway mutation.
func parentDir(path string) string {
	return filepath.Dir(filepath.Clean(path))
}

// joinPath builds a child path under dir for Mkdir's destination.
func joinPath(dir, name string) string {
	return filepath.Join(dir, name)
}

// parentPrefix returns the S3 "directory" prefix containing key, the S3
// Gateway equivalent of parentDir.
func parentPrefix(key string) string {
	trimmed := strings.TrimSuffix(key, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[:i+1]
	}
	return ""
}
