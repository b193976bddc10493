//go:build !windows

package fsgw

import "github.com/eddi888/s3c/internal/model"

// driveRoot never matches on non-Windows platforms; LocalRoots on Unix opens
// directly on "/" instead of a drive-enumeration pseudo-root.
const driveRoot = ""

// driveRootEntries is a no-op stub on non-Windows platforms: there is no
// drive letter concept, so path never matches the pseudo-root and the
// regular os.ReadDir path in List always runs.
func driveRootEntries(path string) ([]model.Entry, bool) {
	return nil, false
}
