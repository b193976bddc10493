package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eddi888/s3c/internal/model"
)

func TestListCredentialProfiles(t *testing.T) {
	tests := map[string]struct {
		contents string
		want     []string
	}{
		"two sections": {
			contents: "[a]\nkey=1\n[b]\nkey=2\n",
			want:     []string{"a", "b"},
		},
		"duplicate section kept once": {
			contents: "[a]\n[a]\n[b]\n",
			want:     []string{"a", "b"},
		},
		"whitespace in header": {
			contents: "[ spaced ]\n",
			want:     []string{"spaced"},
		},
		"no sections": {
			contents: "not an ini file\n",
			want:     nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "credentials")
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0o600))

			got, err := ListCredentialProfiles(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListCredentialProfilesMissingFile(t *testing.T) {
	got, err := ListCredentialProfiles(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMergeProfiles(t *testing.T) {
	cfg := model.Config{Profiles: []model.Profile{{Name: "a"}, {Name: "orphaned"}}}

	got := MergeProfiles([]string{"a", "b"}, cfg)

	assert.Equal(t, []ProfileListEntry{
		{Name: "a"},
		{Name: "b"},
		{Name: "orphaned", Orphan: true},
	}, got)
}

func TestMergeProfilesEmptyConfigColdStart(t *testing.T) {
	// Scenario 1 from spec.md §8: credentials file has [a], [b]; config absent.
	got := MergeProfiles([]string{"a", "b"}, model.Config{})

	assert.Equal(t, []ProfileListEntry{{Name: "a"}, {Name: "b"}}, got)
	for _, e := range got {
		assert.False(t, e.Orphan)
	}
}
