// Package domain contains the core value objects for shed.
package domain

import "go.trai.ch/zerr"

// Declaration is the root record of a shed manifest. It carries the two
// pieces of static data a development shell needs: named source references
// and the platform-keyed shell outputs derived from them.
//
// A Declaration is immutable after construction. Outputs never hands out
// internal state; every call rebuilds the mapping from scratch.
type Declaration struct {
	// Description is a human-readable summary of the environment.
	Description string

	// Inputs maps a symbolic name (e.g., "nixpkgs") to its source reference.
	Inputs map[string]SourceRef

	// Shells maps a platform to the dev shell declared for it.
	Shells map[Platform]EnvironmentDescriptor
}

// Outputs evaluates the declaration against a set of resolved inputs and
// returns the platform-keyed environment descriptors.
//
// The evaluation is pure: it performs no I/O, mutates nothing, and yields a
// structurally identical result on every call with the same inputs. The
// resolved inputs do not alter the shape of the result; selection of concrete
// snapshots happens in the external evaluator.
func (d *Declaration) Outputs(_ ResolvedInputs) map[Platform]EnvironmentDescriptor {
	out := make(map[Platform]EnvironmentDescriptor, len(d.Shells))
	for platform, shell := range d.Shells {
		out[platform] = shell.Canonical()
	}
	return out
}

// Shell returns the environment descriptor declared for the given platform.
// Returns ErrUnknownPlatform if the platform has no dev shell.
func (d *Declaration) Shell(platform Platform) (EnvironmentDescriptor, error) {
	shell, ok := d.Shells[platform]
	if !ok {
		return EnvironmentDescriptor{}, zerr.With(ErrUnknownPlatform, "platform", string(platform))
	}
	return shell.Canonical(), nil
}

// Platforms returns the declared platform keys in unspecified order.
func (d *Declaration) Platforms() []Platform {
	platforms := make([]Platform, 0, len(d.Shells))
	for p := range d.Shells {
		platforms = append(platforms, p)
	}
	return platforms
}
