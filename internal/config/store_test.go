package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/s3cerr"
)

func TestLoadMissingFileFailsOpen(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist", "config.json"))
	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Profiles)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.Equal(t, s3cerr.ConfigCorrupt, s3cerr.Of(err))
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	tests := map[string]model.Config{
		"empty": {},
		"single profile no buckets": {
			Profiles: []model.Profile{{Name: "work"}},
		},
		"profile with bucket and role chain": {
			Profiles: []model.Profile{
				{
					Name:        "work",
					Description: "work account",
					SetupScript: "okta-login.sh",
					Buckets: []model.Bucket{
						{
							Name:       "logs",
							Region:     "us-east-1",
							BasePrefix: "prod/",
							RoleChain:  []string{"arn:aws:iam::1:role/A", "arn:aws:iam::1:role/B"},
						},
					},
				},
			},
		},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			store := NewStore(path)

			require.NoError(t, store.Save(cfg))
			got, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, cfg.Profiles, got.Profiles)
		})
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	cfg := model.Config{Profiles: []model.Profile{{Name: "dup"}, {Name: "dup"}}}
	store := NewStore(filepath.Join(t.TempDir(), "config.json"))

	err := store.Save(cfg)
	require.Error(t, err)
	assert.Equal(t, s3cerr.PersistenceError, s3cerr.Of(err))
}

func TestSaveDoesNotCreateFileUntilCalled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(path)

	_, err := store.Load()
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "config file must not be created by Load alone")
}
