package ports

import "go.trai.ch/shed/internal/core/domain"

// LockStore persists the lockfile that pins declared inputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Load reads the lockfile. Returns nil, nil if no lockfile exists.
	Load() (*domain.Lockfile, error)

	// Save writes the lockfile.
	Save(lock *domain.Lockfile) error
}
