// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/shed/internal/core/domain"

// ConfigLoader defines the interface for loading the shell declaration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the declaration from the manifest at the given path.
	Load(path string) (*domain.Declaration, error)

	// Discover walks upward from cwd looking for a manifest and returns
	// its path. Returns domain-level "not found" if no manifest exists up
	// to the filesystem root.
	Discover(cwd string) (string, error)
}
