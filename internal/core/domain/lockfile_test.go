package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shed/internal/core/domain"
)

func TestLockfile_PinAndCovers(t *testing.T) {
	decl := pythonShell()

	lock := domain.NewLockfile()
	assert.False(t, lock.Covers(decl))

	lock.Pin("nixpkgs", domain.PinnedSource{
		URL: "github:NixOS/nixpkgs",
		Ref: "nixpkgs-unstable",
		Rev: "0123abcd",
	})
	assert.True(t, lock.Covers(decl))

	pin, ok := lock.Get("nixpkgs")
	assert.True(t, ok)
	assert.Equal(t, "github:NixOS/nixpkgs/0123abcd", pin.FlakeRef())

	resolved := lock.Resolved()
	assert.Equal(t, "0123abcd", resolved["nixpkgs"].Rev)
}

func TestSourceRef_FlakeRef(t *testing.T) {
	ref := domain.SourceRef{URL: "github:NixOS/nixpkgs", Ref: "nixpkgs-unstable"}
	assert.Equal(t, "github:NixOS/nixpkgs/nixpkgs-unstable", ref.FlakeRef())

	bare := domain.SourceRef{URL: "github:NixOS/nixpkgs"}
	assert.Equal(t, "github:NixOS/nixpkgs", bare.FlakeRef())
}
