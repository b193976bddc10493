package fsgw

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/eddi888/s3c/internal/s3cerr"
)

// normalize maps a raw os/io error into the closed taxonomy of spec.md §7,
// the same mapping s3gw does for AWS SDK errors, per spec.md §4.4's
// "AccessDenied is distinguished from NotFound."
func normalize(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return s3cerr.New(s3cerr.Canceled, err, "%s canceled", action)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return s3cerr.New(s3cerr.NotFound, err, "%s: not found", action)
	}
	if errors.Is(err, fs.ErrPermission) {
		return s3cerr.New(s3cerr.AccessDenied, err, "%s: access denied", action)
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return s3cerr.New(s3cerr.Other, err, "%s: %s", action, pathErr.Err.Error())
	}

	return s3cerr.New(s3cerr.Other, err, "%s: %s", action, err.Error())
}
