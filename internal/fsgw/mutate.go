package fsgw

import (
	"context"
	"os"
)

// Delete removes path. If path is a directory it is removed recursively
// along with everything under it, per spec.md §4.4's "delete(path) (recursive
// for directories)".
func (g *Gateway) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return normalize(err, "delete "+path)
	}

	info, err := os.Lstat(path)
	if err != nil {
		return normalize(err, "delete "+path)
	}

	if info.IsDir() {
		if err := os.RemoveAll(path); err != nil {
			return normalize(err, "delete "+path)
		}
		return nil
	}

	if err := os.Remove(path); err != nil {
		return normalize(err, "delete "+path)
	}
	return nil
}

// Mkdir creates path and any missing parents, the local counterpart to
// s3gw.Gateway.Mkdir (which instead puts a zero-byte marker object).
func (g *Gateway) Mkdir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return normalize(err, "mkdir "+path)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return normalize(err, "mkdir "+path)
	}
	return nil
}

// Rename moves src to dst. os.Rename already handles the directory case
// atomically on a single filesystem, unlike S3 where a "directory" rename
// has to walk and copy every key individually.
func (g *Gateway) Rename(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return normalize(err, "rename "+src)
	}
	if err := os.Rename(src, dst); err != nil {
		return normalize(err, "rename "+src)
	}
	return nil
}
