package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bilal-AKAG/autogitignore/internal/logging/events"
)

// cacheFile is the on-disk cache document.
type cacheFile struct {
	Templates []string          `json:"templates"`
	Contents  map[string]string `json:"contents"`
}

// Store persists catalog snapshots as a JSON document on disk.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path. An empty path
// yields a store that always misses on load and fails on save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// DefaultCachePath returns the per-user cache file location.
func DefaultCachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locate user cache directory: %w", err)
	}
	return filepath.Join(dir, "autogitignore", "cache.json"), nil
}

// Load returns the cached snapshot when the cache file exists and parses.
// Absence or corruption is a cache miss, never an error.
func (s *Store) Load() (Snapshot, bool) {
	if s.path == "" {
		return Snapshot{}, false
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		events.Catalog.CacheMiss(s.path)
		return Snapshot{}, false
	}
	var cached cacheFile
	if err := json.Unmarshal(data, &cached); err != nil {
		events.Catalog.CacheMiss(s.path)
		return Snapshot{}, false
	}
	contents := cached.Contents
	if contents == nil {
		contents = map[string]string{}
	}
	snap := Snapshot{Names: cached.Templates, Contents: contents}
	if len(snap.Names) == 0 {
		snap = newSnapshot(contents)
	}
	events.Catalog.CacheHit(s.path, len(snap.Names))
	return snap, true
}

// Save serializes the snapshot to the cache path, creating parent
// directories as needed.
func (s *Store) Save(snap Snapshot) error {
	if s.path == "" {
		return fmt.Errorf("cache path not configured")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	data, err := json.Marshal(cacheFile{Templates: snap.Names, Contents: snap.Contents})
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}
