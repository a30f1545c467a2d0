// Package config provides the manifest loader for shed.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/shed/internal/core/domain"
	"go.trai.ch/shed/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest filename looked up by discovery.
const DefaultFilename = "shed.yaml"

// Loader implements ports.ConfigLoader using a YAML manifest file.
type Loader struct {
	// Filename is the manifest filename used by Discover.
	Filename string

	logger ports.Logger
}

// NewLoader creates a new Loader with the default manifest filename.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		logger:   logger,
	}
}

// Load reads a manifest from the given path and returns the declaration.
func (l *Loader) Load(path string) (*domain.Declaration, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}

	return toDeclaration(&manifest)
}

// Discover walks upward from cwd looking for the manifest file and returns
// its absolute path.
func (l *Loader) Discover(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		candidate := filepath.Join(dir, l.Filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

// toDeclaration validates the manifest and converts it to domain values.
func toDeclaration(m *Manifest) (*domain.Declaration, error) {
	if len(m.Inputs) == 0 {
		return nil, domain.ErrNoInputs
	}
	if len(m.Outputs) == 0 {
		return nil, domain.ErrNoShells
	}

	inputs := make(map[string]domain.SourceRef, len(m.Inputs))
	for name, dto := range m.Inputs {
		if name == "" {
			return nil, zerr.New("input name must not be empty")
		}
		if dto.URL == "" {
			return nil, zerr.With(zerr.New("input has no url"), "input", name)
		}
		inputs[name] = domain.SourceRef{URL: dto.URL, Ref: dto.Ref}
	}

	shells := make(map[domain.Platform]domain.EnvironmentDescriptor, len(m.Outputs))
	for key, dto := range m.Outputs {
		platform, err := domain.ParsePlatform(key)
		if err != nil {
			return nil, err
		}

		packages := make([]domain.PackageSpec, 0, len(dto.Packages))
		for _, pkg := range dto.Packages {
			if pkg.Name == "" {
				return nil, zerr.With(zerr.New("package has no name"), "platform", key)
			}
			packages = append(packages, domain.PackageSpec{
				Name: domain.NewInternedString(pkg.Name),
				With: internStrings(pkg.With),
			}.Canonical())
		}

		shells[platform] = domain.EnvironmentDescriptor{
			Platform: platform,
			Packages: packages,
		}
	}

	return &domain.Declaration{
		Description: m.Description,
		Inputs:      inputs,
		Shells:      shells,
	}, nil
}

func internStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
