package nix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shed/internal/adapters/nix"
	"go.trai.ch/shed/internal/core/domain"
)

func pythonDeclaration() *domain.Declaration {
	return &domain.Declaration{
		Description: "Python playground",
		Inputs: map[string]domain.SourceRef{
			"nixpkgs": {URL: "github:NixOS/nixpkgs", Ref: "nixpkgs-unstable"},
		},
		Shells: map[domain.Platform]domain.EnvironmentDescriptor{
			"x86_64-linux": {
				Platform: "x86_64-linux",
				Packages: []domain.PackageSpec{
					{
						Name: domain.NewInternedString("python312"),
						With: []domain.InternedString{domain.NewInternedString("numpy")},
					},
				},
			},
		},
	}
}

func TestRenderFlake_PythonShell(t *testing.T) {
	out := nix.RenderFlake(pythonDeclaration())

	assert.Contains(t, out, `description = "Python playground";`)
	assert.Contains(t, out, `inputs.nixpkgs.url = "github:NixOS/nixpkgs/nixpkgs-unstable";`)
	assert.Contains(t, out, "outputs = { self, nixpkgs }:")
	assert.Contains(t, out, "devShells.x86_64-linux.default =")
	assert.Contains(t, out, "nixpkgs.legacyPackages.x86_64-linux")
	assert.Contains(t, out, "(pkgs.python312.withPackages (ps: [ ps.numpy ]))")
}

func TestRenderFlake_BarePackage(t *testing.T) {
	decl := pythonDeclaration()
	decl.Shells["x86_64-linux"] = domain.EnvironmentDescriptor{
		Platform: "x86_64-linux",
		Packages: []domain.PackageSpec{{Name: domain.NewInternedString("ruff")}},
	}

	out := nix.RenderFlake(decl)

	assert.Contains(t, out, "pkgs.ruff")
	assert.NotContains(t, out, "withPackages")
}

func TestRenderFlake_Deterministic(t *testing.T) {
	decl := pythonDeclaration()
	decl.Inputs["extra"] = domain.SourceRef{URL: "github:numtide/flake-utils"}
	decl.Shells["aarch64-darwin"] = domain.EnvironmentDescriptor{
		Platform: "aarch64-darwin",
		Packages: []domain.PackageSpec{
			{Name: domain.NewInternedString("ruff")},
			{Name: domain.NewInternedString("python312")},
		},
	}

	first := nix.RenderFlake(decl)
	for i := 0; i < 20; i++ {
		if got := nix.RenderFlake(decl); got != first {
			t.Fatalf("RenderFlake is not deterministic on iteration %d\nFirst:\n%s\n\nCurrent:\n%s", i, first, got)
		}
	}

	// Platforms render in sorted order.
	darwinIdx := strings.Index(first, "devShells.aarch64-darwin")
	linuxIdx := strings.Index(first, "devShells.x86_64-linux")
	require.NotEqual(t, -1, darwinIdx)
	require.NotEqual(t, -1, linuxIdx)
	assert.Less(t, darwinIdx, linuxIdx)

	// Packages render sorted by name.
	pyIdx := strings.Index(first, "pkgs.python312")
	ruffIdx := strings.Index(first, "pkgs.ruff")
	assert.Less(t, pyIdx, ruffIdx)
}

func TestGeneratePinnedExpr_Deterministic(t *testing.T) {
	shell := domain.EnvironmentDescriptor{
		Platform: "x86_64-linux",
		Packages: []domain.PackageSpec{
			{
				Name: domain.NewInternedString("python312"),
				With: []domain.InternedString{
					domain.NewInternedString("scipy"),
					domain.NewInternedString("numpy"),
				},
			},
			{Name: domain.NewInternedString("ruff")},
		},
	}
	pin := domain.PinnedSource{URL: "github:NixOS/nixpkgs", Rev: "0123abcd"}

	first := nix.GeneratePinnedExprForTest(shell, pin)
	for i := 0; i < 20; i++ {
		if got := nix.GeneratePinnedExprForTest(shell, pin); got != first {
			t.Fatalf("generatePinnedExpr is not deterministic on iteration %d", i)
		}
	}

	assert.Contains(t, first, `system = "x86_64-linux";`)
	assert.Contains(t, first, `flake = builtins.getFlake "github:NixOS/nixpkgs/0123abcd";`)
	// Extensions appear sorted inside withPackages.
	assert.Contains(t, first, "(pkgs.python312.withPackages (ps: [ ps.numpy ps.scipy ]))")
}
