// Package preview is the Preview Engine (spec.md §4.5): a chunked,
// bidirectional, read-only viewer that opens arbitrarily large files without
// loading them whole. It works over any Source, implemented here for both
// the S3 Gateway and the Filesystem Gateway so the same state machine drives
// S3Browser and LocalBrowser previews alike.
package preview

import (
	"context"

	"github.com/eddi888/s3c/internal/fsgw"
	"github.com/eddi888/s3c/internal/s3gw"
)

// Source is the minimal byte-range interface the Preview Engine needs: a
// total size (from a head/stat call) and arbitrary range reads.
type Source interface {
	// Size returns the total byte length of the underlying entry.
	Size(ctx context.Context) (int64, error)
	// ReadRange returns length bytes starting at offset. A short final read
	// (fewer than length bytes) is not an error.
	ReadRange(ctx context.Context, offset, length int64) ([]byte, error)
}

// S3Source adapts an s3gw.Gateway object to Source.
type S3Source struct {
	Gateway *s3gw.Gateway
	Key     string
}

func (s S3Source) Size(ctx context.Context) (int64, error) {
	info, err := s.Gateway.Head(ctx, s.Key)
	if err != nil {
		return 0, err
	}
	return info.Size, nil
}

func (s S3Source) ReadRange(ctx context.Context, offset, length int64) ([]byte, error) {
	return s.Gateway.GetRange(ctx, s.Key, offset, length)
}

// FileSource adapts an fsgw.Gateway path to Source.
type FileSource struct {
	Gateway *fsgw.Gateway
	Path    string
}

func (f FileSource) Size(ctx context.Context) (int64, error) {
	e, err := f.Gateway.Stat(ctx, f.Path)
	if err != nil {
		return 0, err
	}
	return e.Size, nil
}

func (f FileSource) ReadRange(ctx context.Context, offset, length int64) ([]byte, error) {
	return f.Gateway.ReadRange(ctx, f.Path, offset, length)
}
