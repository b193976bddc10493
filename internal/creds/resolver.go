package creds

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/s3gw"
)

// Resolver implements spec.md §4.2's algorithm steps 2-4 (base client + role
// chain) and owns the resolved-client cache. Step 1 (the setup script) is
// run separately by the caller (the app runs ShellCommand under
// tea.ExecProcess and reads the outcome with ClassifyExit), since only the
// message loop may suspend the terminal around it.
type Resolver struct {
	cache *lru.Cache[cacheKey, *s3gw.Gateway]
}

// NewResolver returns a Resolver whose cache holds up to maxBuckets resolved
// clients, per spec.md §5's "max cached clients = number of distinct buckets
// in current session".
func NewResolver(maxBuckets int) (*Resolver, error) {
	if maxBuckets < 1 {
		maxBuckets = 1
	}
	cache, err := lru.New[cacheKey, *s3gw.Gateway](maxBuckets)
	if err != nil {
		return nil, err
	}
	return &Resolver{cache: cache}, nil
}

// Resolve returns a ready-to-use Gateway for (profileName, bucket), building
// and caching one if not already cached. It does not run the setup script;
// callers run it first when profile.SetupScript is set.
func (r *Resolver) Resolve(ctx context.Context, profileName string, bucket model.Bucket) (*s3gw.Gateway, error) {
	key := cacheKey{profile: profileName, bucket: bucket.Name}
	if gw, ok := r.cache.Get(key); ok {
		return gw, nil
	}

	client, awsCfg, err := buildBaseClient(ctx, profileName, bucket)
	if err != nil {
		return nil, err
	}

	if len(bucket.RoleChain) > 0 {
		assumedCfg, err := assumeRoleChain(ctx, awsCfg, bucket.RoleChain)
		if err != nil {
			return nil, err
		}
		client = newClientFromConfig(assumedCfg, bucket)
	}

	gw := s3gw.New(client, bucket.Name)
	r.cache.Add(key, gw)
	return gw, nil
}

// Evict drops the cached client for (profileName, bucketName), per spec.md
// §4.2's "dropped when the user navigates out of that bucket."
func (r *Resolver) Evict(profileName, bucketName string) {
	r.cache.Remove(cacheKey{profile: profileName, bucket: bucketName})
}
