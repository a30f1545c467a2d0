package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shed/internal/adapters/config"
	"go.trai.ch/shed/internal/core/domain"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
description: Python playground
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs
    ref: nixpkgs-unstable
outputs:
  x86_64-linux:
    packages:
      - name: python312
        with: [numpy]
`
	path := writeManifest(t, t.TempDir(), content)

	loader := config.NewLoader(nil)
	decl, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Python playground", decl.Description)

	ref, ok := decl.Inputs["nixpkgs"]
	require.True(t, ok)
	assert.Equal(t, "github:NixOS/nixpkgs/nixpkgs-unstable", ref.FlakeRef())

	shell, err := decl.Shell("x86_64-linux")
	require.NoError(t, err)
	require.Len(t, shell.Packages, 1)
	assert.Equal(t, "python312", shell.Packages[0].Name.String())
	require.Len(t, shell.Packages[0].With, 1)
	assert.Equal(t, "numpy", shell.Packages[0].With[0].String())
}

func TestLoad_MissingFile(t *testing.T) {
	loader := config.NewLoader(nil)
	_, err := loader.Load(filepath.Join(t.TempDir(), "shed.yaml"))
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "inputs: [:::")

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoad_NoInputs(t *testing.T) {
	content := `
description: empty
outputs:
  x86_64-linux:
    packages:
      - name: python312
`
	path := writeManifest(t, t.TempDir(), content)

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	require.ErrorIs(t, err, domain.ErrNoInputs)
}

func TestLoad_NoShells(t *testing.T) {
	content := `
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs
`
	path := writeManifest(t, t.TempDir(), content)

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	require.ErrorIs(t, err, domain.ErrNoShells)
}

func TestLoad_InvalidPlatformKey(t *testing.T) {
	content := `
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs
outputs:
  linux:
    packages:
      - name: python312
`
	path := writeManifest(t, t.TempDir(), content)

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	require.ErrorIs(t, err, domain.ErrInvalidPlatform)
}

func TestLoad_EmptyPackageName(t *testing.T) {
	content := `
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs
outputs:
  x86_64-linux:
    packages:
      - with: [numpy]
`
	path := writeManifest(t, t.TempDir(), content)

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoad_InputWithoutURL(t *testing.T) {
	content := `
inputs:
  nixpkgs:
    ref: nixpkgs-unstable
outputs:
  x86_64-linux:
    packages:
      - name: python312
`
	path := writeManifest(t, t.TempDir(), content)

	loader := config.NewLoader(nil)
	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoad_CanonicalizesExtensions(t *testing.T) {
	content := `
inputs:
  nixpkgs:
    url: github:NixOS/nixpkgs
outputs:
  x86_64-linux:
    packages:
      - name: python312
        with: [scipy, numpy, numpy]
`
	path := writeManifest(t, t.TempDir(), content)

	loader := config.NewLoader(nil)
	decl, err := loader.Load(path)
	require.NoError(t, err)

	shell, err := decl.Shell("x86_64-linux")
	require.NoError(t, err)
	with := shell.Packages[0].With
	require.Len(t, with, 2)
	assert.Equal(t, "numpy", with[0].String())
	assert.Equal(t, "scipy", with[1].String())
}
