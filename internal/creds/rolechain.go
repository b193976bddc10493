package creds

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/cenkalti/backoff/v4"

	"github.com/eddi888/s3c/internal/s3cerr"
)

// assumeRoleChain walks chain in order (spec.md §4.2 step 3): each arn is
// assumed using the credentials current at that step, and the returned
// credentials become current for the next step. On failure at step i of n
// it aborts with RoleAssumptionFailed{step:i, total:n, arn, cause}.
func assumeRoleChain(ctx context.Context, base aws.Config, chain []string) (aws.Config, error) {
	cfg := base
	total := len(chain)

	for i, arn := range chain {
		step := i + 1
		stsClient := sts.NewFromConfig(cfg)

		provider := stscreds.NewAssumeRoleProvider(stsClient, arn, func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = "s3c"
		})

		if err := retrieveWithBackoff(ctx, provider); err != nil {
			return aws.Config{}, s3cerr.RoleAssumptionFailedErr(step, total, arn, classifyAssumeRoleError(err))
		}

		cfg.Credentials = aws.NewCredentialsCache(provider)
	}

	return cfg, nil
}

// retrieveWithBackoff retries only transient (network) failures retrieving
// credentials from an assume-role provider; a definitive AccessDenied from
// STS is not retried. cenkalti/backoff/v4 wraps only this call (not the
// whole chain), matching SPEC_FULL.md §4.2's note that a blip on step 2
// must not silently re-run step 1.
func retrieveWithBackoff(ctx context.Context, provider aws.CredentialsProvider) error {
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)

	return backoff.Retry(func() error {
		_, err := provider.Retrieve(ctx)
		if err == nil {
			return nil
		}
		if isTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}, b)
}

func isTransient(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return false // a definitive API response (e.g. AccessDenied) is not transient
	}
	return true
}

func classifyAssumeRoleError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "AccessDenied" {
		return s3cerr.New(s3cerr.AccessDenied, err, "access denied")
	}
	return s3cerr.New(s3cerr.NetworkError, err, "network error")
}
