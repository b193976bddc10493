// Package config implements the Config Store (spec.md §4.1): loading and
// atomically saving the profile→bucket registry, and enumerating credential
// profiles from the ambient AWS credentials file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/eddi888/s3c/internal/model"
	"github.com/eddi888/s3c/internal/s3cerr"
)

// Store loads and persists Config at a fixed path.
type Store struct {
	path string
}

// DefaultPath returns "<user-config-dir>/s3c/config.json".
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "s3c", "config.json"), nil
}

// NewStore returns a Store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads Config from disk. A missing file fails open to an empty Config,
// per spec.md §4.1. A file that exists but does not parse as JSON returns
// ConfigCorrupt.
func (s *Store) Load() (model.Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Config{}, nil
		}
		return model.Config{}, s3cerr.New(s3cerr.PersistenceError, err, "reading config %s", s.path)
	}

	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.Config{}, s3cerr.New(s3cerr.ConfigCorrupt, err, "parsing config %s", s.path)
	}
	if err := cfg.Validate(); err != nil {
		return model.Config{}, s3cerr.New(s3cerr.ConfigCorrupt, err, "invalid config %s", s.path)
	}
	return cfg, nil
}

// Save persists cfg via write-temp + rename, the standard atomic-replace
// idiom: a partial write from a crash or a concurrent reader never observes
// a half-written config.json.
func (s *Store) Save(cfg model.Config) error {
	if err := cfg.Validate(); err != nil {
		return s3cerr.New(s3cerr.PersistenceError, err, "refusing to save invalid config")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return s3cerr.New(s3cerr.PersistenceError, err, "creating config dir %s", dir)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return s3cerr.New(s3cerr.PersistenceError, err, "encoding config")
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json.tmp")
	if err != nil {
		return s3cerr.New(s3cerr.PersistenceError, err, "creating temp file in %s", dir)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return s3cerr.New(s3cerr.PersistenceError, err, "writing temp config")
	}
	if err := tmp.Close(); err != nil {
		return s3cerr.New(s3cerr.PersistenceError, err, "closing temp config")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return s3cerr.New(s3cerr.PersistenceError, err, "replacing %s", s.path)
	}
	return nil
}

// Path reports the file backing this Store.
func (s *Store) Path() string { return s.path }
