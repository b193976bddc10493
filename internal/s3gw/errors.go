package s3gw

import (
	"context"
	"errors"
	"net"

	"github.com/aws/smithy-go"

	"github.com/eddi888/s3c/internal/s3cerr"
)

// normalize maps a raw AWS SDK error into the closed taxonomy of spec.md §7,
// the way the S3 Gateway is required to: "raw SDK errors map to a closed
// taxonomy {NotFound, AccessDenied, WrongRegion, NetworkError, Canceled,
// Other(msg)}".
func normalize(err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return s3cerr.New(s3cerr.Canceled, err, "%s canceled", action)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return s3cerr.New(s3cerr.NotFound, err, "%s: not found", action)
		case "AccessDenied", "Forbidden":
			return s3cerr.New(s3cerr.AccessDenied, err, "%s: access denied", action)
		case "AuthorizationHeaderMalformed", "PermanentRedirect", "BadRequest":
			// The SDK reports a region mismatch in any of these shapes
			// depending on the target's signature version.
			return s3cerr.New(s3cerr.WrongRegion, err, "%s: wrong region", action)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return s3cerr.New(s3cerr.NetworkError, err, "%s: network error", action)
	}

	return s3cerr.New(s3cerr.Other, err, "%s: %s", action, err.Error())
}
