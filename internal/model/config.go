package model

import (
	"fmt"
	"strings"
)

// Config is the persisted profile→bucket registry, spec.md §3.
type Config struct {
	Profiles []Profile `json:"profiles"`
}

// Profile is a named credentials-file section, optionally extended with a
// setup script and a list of buckets.
type Profile struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	SetupScript string   `json:"setup_script,omitempty"`
	Buckets     []Bucket `json:"buckets"`
}

// Bucket is one configured S3 (or S3-compatible) bucket under a Profile.
type Bucket struct {
	Name        string   `json:"name"`
	Region      string   `json:"region"`
	Description string   `json:"description,omitempty"`
	BasePrefix  string   `json:"base_prefix,omitempty"`
	RoleChain   []string `json:"role_chain,omitempty"`
	EndpointURL string   `json:"endpoint_url,omitempty"`
	PathStyle   bool     `json:"path_style,omitempty"`
}

// Validate enforces spec.md §3's invariants: unique profile names, unique
// bucket names within a profile, non-empty role chains, base_prefix ending
// in "/".
func (c Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Profiles))
	for _, p := range c.Profiles {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("duplicate profile name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	return nil
}

// Validate enforces the per-profile invariants.
func (p Profile) Validate() error {
	seen := make(map[string]struct{}, len(p.Buckets))
	for _, b := range p.Buckets {
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("duplicate bucket name %q", b.Name)
		}
		seen[b.Name] = struct{}{}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("bucket %q: %w", b.Name, err)
		}
	}
	return nil
}

// Validate enforces the per-bucket invariants.
func (b Bucket) Validate() error {
	if b.RoleChain != nil && len(b.RoleChain) == 0 {
		return fmt.Errorf("role_chain must be absent or non-empty")
	}
	if b.BasePrefix != "" && !strings.HasSuffix(b.BasePrefix, "/") {
		return fmt.Errorf("base_prefix %q must end with /", b.BasePrefix)
	}
	return nil
}

// FindProfile returns the profile named name, if present.
func (c Config) FindProfile(name string) (Profile, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// FindBucket returns the bucket named name within profile, if present.
func (p Profile) FindBucket(name string) (Bucket, bool) {
	for _, b := range p.Buckets {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}
