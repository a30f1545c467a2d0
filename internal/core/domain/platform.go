package domain

import (
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies an architecture/OS pair using the Nix system string
// convention (e.g., "x86_64-linux", "aarch64-darwin").
type Platform string

// ParsePlatform validates a platform key from a manifest.
// The key must be of the form "<arch>-<os>" with both halves non-empty.
func ParsePlatform(s string) (Platform, error) {
	arch, os, ok := strings.Cut(s, "-")
	if !ok || arch == "" || os == "" {
		return "", zerr.With(ErrInvalidPlatform, "platform", s)
	}
	return Platform(s), nil
}

// String returns the platform key.
func (p Platform) String() string {
	return string(p)
}

// CurrentPlatform returns the platform of the running process, mapping
// Go's GOARCH/GOOS names to Nix system strings.
func CurrentPlatform() Platform {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "386":
		arch = "i686"
	}
	return Platform(arch + "-" + runtime.GOOS)
}
