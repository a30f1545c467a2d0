// Package lockfile persists the pinned inputs as a flat JSON file.
package lockfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/shed/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// DefaultFilename is the lockfile name next to the manifest.
const DefaultFilename = "shed.lock"

// Store implements ports.LockStore using a flat JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a new LockStore backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load reads the lockfile. Returns nil, nil if the file does not exist.
func (s *Store) Load() (*domain.Lockfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read lockfile")
	}

	var lock domain.Lockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal lockfile"), "path", s.path)
	}

	if lock.Version != domain.LockfileVersion {
		return nil, zerr.With(domain.ErrLockfileVersion, "version", lock.Version)
	}

	return &lock, nil
}

// Save writes the lockfile, creating parent directories as needed.
func (s *Store) Save(lock *domain.Lockfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create lockfile directory")
	}

	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lockfile")
	}
	data = append(data, '\n')

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		return zerr.Wrap(err, "failed to write lockfile")
	}

	return nil
}
