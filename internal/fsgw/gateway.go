// Package fsgw is the Filesystem Gateway (spec.md §4.4): the local-path
// counterpart to internal/s3gw, presenting the same list/read_range/write
// /delete/rename/mkdir verbs but over the OS filesystem via the standard
// library's os and io/fs packages, normalizing errors into the same
// s3cerr taxonomy the S3 Gateway uses so the reducer never has to branch on
// which gateway produced a failure.
package fsgw

// Gateway is the local filesystem's counterpart to s3gw.Gateway. It carries
// no handle of its own — every operation takes an absolute path — so a
// single Gateway value is shared across both panels when either is browsing
// the local filesystem.
type Gateway struct{}

// New returns a ready-to-use Gateway. There is no connection to establish:
// the filesystem is always "resolved".
func New() *Gateway { return &Gateway{} }
