// Package creds is the Credential Resolver (spec.md §4.2): runs a profile's
// setup script, builds a base S3 client scoped to a bucket's region and
// endpoint, walks an optional role-assumption chain, and caches the
// resulting Gateway per (profile, bucket) for the bucket session. Grounded
// on gostratum-storagex's adapters/s3/client.go for the aws-sdk-go-v2
// config/credentials/stscreds wiring shape.
package creds

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/s3cerr"
)

// buildBaseClient constructs the step-2 client of spec.md §4.2: the named
// profile's credentials, the bucket's region, and (if present) its
// endpoint_url/path_style.
func buildBaseClient(ctx context.Context, profileName string, bucket model.Bucket) (*s3.Client, aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if profileName != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profileName))
	}
	if bucket.Region != "" {
		opts = append(opts, awsconfig.WithRegion(bucket.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, aws.Config{}, s3cerr.New(s3cerr.Other, err, "loading AWS config for profile %q", profileName)
	}

	client := newClientFromConfig(awsCfg, bucket)
	return client, awsCfg, nil
}

func newClientFromConfig(awsCfg aws.Config, bucket model.Bucket) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if bucket.EndpointURL != "" {
			o.BaseEndpoint = aws.String(bucket.EndpointURL)
		}
		if bucket.PathStyle {
			o.UsePathStyle = true
		}
	})
}

// cacheKey identifies a resolved client for the LRU cache: spec.md §4.2
// caches "keyed by (profile.name, bucket.name) for the duration of the
// bucket session".
type cacheKey struct {
	profile string
	bucket  string
}

func (k cacheKey) String() string { return fmt.Sprintf("%s/%s", k.profile, k.bucket) }
