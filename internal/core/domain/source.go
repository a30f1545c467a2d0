package domain

// SourceRef identifies an upstream package collection and a version
// selector. The ref is a mutable branch pointer, not a fixed content hash:
// the external evaluator resolves it to exactly one concrete snapshot on
// each invocation. shed never caches the resolution inside the domain.
type SourceRef struct {
	// URL is the flake-style locator of the collection
	// (e.g., "github:NixOS/nixpkgs").
	URL string

	// Ref is the branch or tag to follow (e.g., "nixpkgs-unstable").
	Ref string
}

// FlakeRef returns the reference string passed to the external evaluator.
func (s SourceRef) FlakeRef() string {
	if s.Ref == "" {
		return s.URL
	}
	return s.URL + "/" + s.Ref
}

// PinnedSource is a source reference resolved to one concrete snapshot.
// The pin is produced entirely by the external evaluator; shed only records
// what the evaluator reports.
type PinnedSource struct {
	// URL is the locator of the collection, copied from the source ref.
	URL string `json:"url"`

	// Ref is the branch the pin was resolved from.
	Ref string `json:"ref"`

	// Rev is the Git revision (commit SHA) of the snapshot.
	Rev string `json:"rev"`

	// NarHash is the content hash of the snapshot as reported by the
	// evaluator.
	NarHash string `json:"narHash"`

	// LastModified is the snapshot's commit timestamp in Unix seconds.
	LastModified int64 `json:"lastModified"`
}

// FlakeRef returns the pinned reference string. Unlike SourceRef.FlakeRef,
// the result addresses an immutable snapshot.
func (p PinnedSource) FlakeRef() string {
	return p.URL + "/" + p.Rev
}

// ResolvedInputs maps input names to their pinned snapshots. It is the
// value the external evaluator supplies to Declaration.Outputs.
type ResolvedInputs map[string]PinnedSource
