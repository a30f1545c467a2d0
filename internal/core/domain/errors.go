package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownPlatform is returned when no dev shell is declared for the
	// requested platform.
	ErrUnknownPlatform = zerr.New("no dev shell declared for platform")

	// ErrInvalidPlatform is returned when a platform key is not of the form
	// "<arch>-<os>".
	ErrInvalidPlatform = zerr.New("invalid platform key")

	// ErrManifestNotFound is returned when no manifest exists in the
	// working directory or any of its parents.
	ErrManifestNotFound = zerr.New("manifest not found")

	// ErrNoInputs is returned when a declaration names no source inputs.
	ErrNoInputs = zerr.New("declaration has no inputs")

	// ErrNoShells is returned when a declaration names no dev shells.
	ErrNoShells = zerr.New("declaration has no dev shells")

	// ErrInputNotPinned is returned when an input referenced by the
	// declaration has no entry in the lockfile.
	ErrInputNotPinned = zerr.New("input is not pinned in lockfile")

	// ErrLockfileVersion is returned when a lockfile has an unsupported
	// format version.
	ErrLockfileVersion = zerr.New("unsupported lockfile version")

	// ErrResolveFailed is returned when the external evaluator fails to
	// resolve a source reference.
	ErrResolveFailed = zerr.New("source resolution failed")

	// ErrRealizeFailed is returned when the external evaluator fails to
	// realize a dev shell environment.
	ErrRealizeFailed = zerr.New("environment realization failed")
)
