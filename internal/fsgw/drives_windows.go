//go:build windows

package fsgw

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/eddi888/s3c/internal/model"
)

// driveRoot is the pseudo-path a LocalRoots panel enters to request the
// drive list, per spec.md §4.4: "On Windows when path is the pseudo-root
// \\, produce an entry per available drive letter."
const driveRoot = `\\`

// driveRootEntries returns one Entry per available drive letter when path is
// the pseudo-root, using GetLogicalDrives' bitmask the way Windows console
// tools enumerate drives.
func driveRootEntries(path string) ([]model.Entry, bool) {
	if path != driveRoot {
		return nil, false
	}

	mask := windows.GetLogicalDrives()
	var entries []model.Entry
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		letter := string(rune('A' + i))
		entries = append(entries, model.Entry{
			Name: fmt.Sprintf("%s:\\", letter),
			Kind: model.KindDirectory,
			Size: -1,
		})
	}
	return entries, true
}
