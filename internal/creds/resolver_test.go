package creds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddi888/s3c/internal/model"
)

func testBucket(name string) model.Bucket {
	return model.Bucket{Name: name, Region: "us-east-1"}
}

func TestResolverCachesByProfileAndBucket(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "KEY")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")

	r, err := NewResolver(2)
	require.NoError(t, err)

	gw1, err := r.Resolve(context.Background(), "work", testBucket("logs"))
	require.NoError(t, err)
	gw2, err := r.Resolve(context.Background(), "work", testBucket("logs"))
	require.NoError(t, err)

	assert.Same(t, gw1, gw2, "a second Resolve for the same (profile, bucket) must hit the cache")
}

func TestResolverEvictDropsCachedClient(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "KEY")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")

	r, err := NewResolver(2)
	require.NoError(t, err)

	gw1, err := r.Resolve(context.Background(), "work", testBucket("logs"))
	require.NoError(t, err)

	r.Evict("work", "logs")

	gw2, err := r.Resolve(context.Background(), "work", testBucket("logs"))
	require.NoError(t, err)
	assert.NotSame(t, gw1, gw2, "after Evict, Resolve must rebuild rather than reuse the old client")
}

func TestResolverDistinctBucketsAreIndependentCacheEntries(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "KEY")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")

	r, err := NewResolver(2)
	require.NoError(t, err)

	gwA, err := r.Resolve(context.Background(), "work", testBucket("a"))
	require.NoError(t, err)
	gwB, err := r.Resolve(context.Background(), "work", testBucket("b"))
	require.NoError(t, err)

	assert.NotSame(t, gwA, gwB)
	assert.Equal(t, "a", gwA.Bucket())
	assert.Equal(t, "b", gwB.Bucket())
}
