package nix

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"go.trai.ch/shed/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.SourceResolver using `nix flake metadata`.
// The branch-to-revision resolution happens entirely inside the external
// evaluator; the resolver only relays the reported snapshot.
type Resolver struct{}

// NewResolver creates a new SourceResolver backed by the Nix CLI.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve pins the named input's branch ref to a concrete revision.
func (r *Resolver) Resolve(ctx context.Context, name string, ref domain.SourceRef) (domain.PinnedSource, error) {
	flakeRef := ref.FlakeRef()

	//nolint:gosec // flakeRef comes from the validated manifest
	cmd := exec.CommandContext(ctx, "nix", "flake", "metadata",
		"--extra-experimental-features", "nix-command flakes",
		"--json", flakeRef)

	output, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		resolveErr := zerr.Wrap(err, domain.ErrResolveFailed.Error())
		resolveErr = zerr.With(resolveErr, "input", name)
		resolveErr = zerr.With(resolveErr, "ref", flakeRef)
		return domain.PinnedSource{}, zerr.With(resolveErr, "stderr", stderr)
	}

	pin, err := parseFlakeMetadata(output)
	if err != nil {
		parseErr := zerr.Wrap(err, "failed to parse flake metadata")
		return domain.PinnedSource{}, zerr.With(parseErr, "input", name)
	}

	pin.URL = ref.URL
	pin.Ref = ref.Ref
	return pin, nil
}

// flakeMetadata represents the JSON output of `nix flake metadata --json`.
type flakeMetadata struct {
	Revision     string `json:"revision"`
	LastModified int64  `json:"lastModified"`
	Locked       struct {
		Rev          string `json:"rev"`
		NarHash      string `json:"narHash"`
		LastModified int64  `json:"lastModified"`
	} `json:"locked"`
}

// parseFlakeMetadata extracts the pinned snapshot from the metadata output.
func parseFlakeMetadata(data []byte) (domain.PinnedSource, error) {
	var meta flakeMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.PinnedSource{}, zerr.Wrap(err, "failed to unmarshal flake metadata")
	}

	rev := meta.Locked.Rev
	if rev == "" {
		rev = meta.Revision
	}
	if rev == "" {
		return domain.PinnedSource{}, zerr.New("flake metadata has no revision")
	}

	lastModified := meta.Locked.LastModified
	if lastModified == 0 {
		lastModified = meta.LastModified
	}

	return domain.PinnedSource{
		Rev:          rev,
		NarHash:      meta.Locked.NarHash,
		LastModified: lastModified,
	}, nil
}
