package domain

// LockfileVersion is the current lockfile format version.
const LockfileVersion = 1

// Lockfile records the pinned snapshot of every declared input. It is a
// reproducible record of one resolution pass; re-locking against the same
// upstream state yields an identical file.
type Lockfile struct {
	// Version is the lockfile format version, kept for schema migrations.
	Version int `json:"version"`

	// Inputs maps input names to their pinned sources.
	Inputs map[string]PinnedSource `json:"inputs"`
}

// NewLockfile creates an empty lockfile at the current format version.
func NewLockfile() *Lockfile {
	return &Lockfile{
		Version: LockfileVersion,
		Inputs:  make(map[string]PinnedSource),
	}
}

// Pin records the pinned source for the named input, replacing any
// previous pin.
func (l *Lockfile) Pin(name string, p PinnedSource) {
	if l.Inputs == nil {
		l.Inputs = make(map[string]PinnedSource)
	}
	l.Inputs[name] = p
}

// Get returns the pin for the named input.
func (l *Lockfile) Get(name string) (PinnedSource, bool) {
	p, ok := l.Inputs[name]
	return p, ok
}

// Resolved returns the lockfile contents as ResolvedInputs for evaluation.
func (l *Lockfile) Resolved() ResolvedInputs {
	resolved := make(ResolvedInputs, len(l.Inputs))
	for name, pin := range l.Inputs {
		resolved[name] = pin
	}
	return resolved
}

// Covers reports whether the lockfile pins every input of the declaration.
func (l *Lockfile) Covers(d *Declaration) bool {
	for name := range d.Inputs {
		if _, ok := l.Inputs[name]; !ok {
			return false
		}
	}
	return true
}
