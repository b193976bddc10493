package fsgw

import (
	"context"
	"os"
	"path/filepath"

	"github.com/eddi888/s3c/internal/model"
)

// List returns the entries directly under path: one Entry per directory
// child, plus a synthesized ".." entry unless path is a filesystem root, per
// spec.md §4.4. Sorting is the Panel Model's responsibility (spec.md §4.7),
// so entries come back in whatever order os.ReadDir yields them.
//
// On Windows, calling List with the pseudo-root path `\\` returns one Entry
// per available drive letter instead of reading a directory; see
// drives_windows.go / drives_other.go.
func (g *Gateway) List(ctx context.Context, path string) ([]model.Entry, error) {
	if drives, ok := driveRootEntries(path); ok {
		return drives, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, normalize(err, "list "+path)
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, normalize(err, "list "+path)
	}

	var entries []model.Entry
	if !isFilesystemRoot(path) {
		entries = append(entries, model.Entry{Name: "..", Kind: model.KindUp, Size: -1})
	}

	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			// A file vanishing between ReadDir and Info is not fatal to the
			// whole listing; skip it rather than failing the directory.
			continue
		}
		e := model.Entry{Name: de.Name(), MTime: info.ModTime(), HasMTime: true}
		if de.IsDir() {
			e.Kind, e.Size = model.KindDirectory, -1
		} else {
			e.Kind, e.Size = model.KindFile, info.Size()
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// isFilesystemRoot reports whether path has no parent worth navigating to:
// "/" on Unix, a drive root or the drive-enumeration pseudo-root on Windows.
func isFilesystemRoot(path string) bool {
	clean := filepath.Clean(path)
	return clean == filepath.Dir(clean)
}

// Stat returns size/mtime for path, the local-filesystem equivalent of
// s3gw.Head.
func (g *Gateway) Stat(ctx context.Context, path string) (model.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.Entry{}, normalize(err, "stat "+path)
	}
	e := model.Entry{Name: info.Name(), Size: info.Size(), MTime: info.ModTime(), HasMTime: true}
	if info.IsDir() {
		e.Kind, e.Size = model.KindDirectory, -1
	} else {
		e.Kind = model.KindFile
	}
	return e, nil
}
