package fsgw

import (
	"context"
	"io"
	"os"

	"github.com/eddi888/s3c/internal/s3cerr"
)

// ReadRange reads length bytes of path starting at offset, the local
// counterpart to s3gw.Gateway.GetRange and the primitive the Preview Engine
// chunks a local file through.
func (g *Gateway) ReadRange(ctx context.Context, path string, offset, length int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, normalize(err, "read "+path)
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return nil, normalize(err, "read "+path)
	}

	buf := make([]byte, length)
	n, err := f.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return nil, normalize(err, "read "+path)
	}
	return buf[:n], nil
}

// ProgressFunc receives a running byte count as Write streams its body, the
// same shape as s3gw.ProgressFunc.
type ProgressFunc func(transferred int64)

// Write streams stream into path, creating or truncating it, reporting
// progress via progress. The app's S3→Filesystem downloads do not go
// through it; they create the file directly and stream into it with
// s3gw.Gateway.Download.
func (g *Gateway) Write(ctx context.Context, path string, stream io.Reader, progress ProgressFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return normalize(err, "write "+path)
	}
	defer f.Close()

	var written int64
	buf := make([]byte, 256*1024)
	for {
		if err := ctx.Err(); err != nil {
			return normalize(err, "write "+path)
		}
		n, rerr := stream.Read(buf)
		if n > 0 {
			if _, werr := f.Write(buf[:n]); werr != nil {
				return normalize(werr, "write "+path)
			}
			written += int64(n)
			if progress != nil {
				progress(written)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return normalize(rerr, "write "+path)
		}
	}

	if err := f.Sync(); err != nil {
		return normalize(err, "sync "+path)
	}
	return nil
}

// Open returns a read-only handle on path, used by the Transfer Manager for
// the Filesystem→S3 upload direction where s3gw.Put wants an io.Reader plus
// a known length.
func (g *Gateway) Open(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, normalize(err, "open "+path)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, normalize(err, "stat "+path)
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, s3cerr.New(s3cerr.Other, nil, "%s is a directory", path)
	}
	return f, info.Size(), nil
}
