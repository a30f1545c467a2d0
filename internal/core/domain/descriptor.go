package domain

import "slices"

// PackageSpec names an interpreter (or standalone tool) drawn from the
// upstream package collection, plus an optional selection of extension
// libraries from that interpreter's own package set.
//
// A bare spec ("go") renders as the package itself. A spec with extensions
// ("python312" with "numpy") renders as the interpreter configured with those
// extensions. Extension names must exist in the referenced package set;
// that check belongs to the external evaluator.
type PackageSpec struct {
	// Name is the attribute name of the package (e.g., "python312").
	Name InternedString

	// With lists extension attribute names selected from the package's
	// extension set (e.g., "numpy" from python312.pkgs).
	With []InternedString
}

// Canonical returns a copy of the spec with extensions sorted and
// deduplicated. Selection order is irrelevant by contract.
func (p PackageSpec) Canonical() PackageSpec {
	return PackageSpec{
		Name: p.Name,
		With: canonicalizeInterned(p.With),
	}
}

// EnvironmentDescriptor is the set of packages to make available in a dev
// shell for one platform. Descriptors are created at declaration time and
// never mutated afterwards.
type EnvironmentDescriptor struct {
	// Platform is the system this shell is declared for.
	Platform Platform

	// Packages lists the desired package specifications. Order is
	// irrelevant; Canonical establishes a stable one.
	Packages []PackageSpec
}

// Canonical returns a deep copy of the descriptor with packages sorted by
// name and each package canonicalized. Two descriptors declaring the same
// set of packages canonicalize to identical values.
func (d EnvironmentDescriptor) Canonical() EnvironmentDescriptor {
	packages := make([]PackageSpec, len(d.Packages))
	for i, pkg := range d.Packages {
		packages[i] = pkg.Canonical()
	}
	slices.SortFunc(packages, func(a, b PackageSpec) int {
		switch {
		case a.Name.String() < b.Name.String():
			return -1
		case a.Name.String() > b.Name.String():
			return 1
		default:
			return 0
		}
	})
	return EnvironmentDescriptor{
		Platform: d.Platform,
		Packages: packages,
	}
}

func canonicalizeInterned(strs []InternedString) []InternedString {
	if len(strs) == 0 {
		return nil
	}

	sorted := make([]string, len(strs))
	for i, s := range strs {
		sorted[i] = s.String()
	}
	slices.Sort(sorted)

	unique := slices.Compact(sorted)
	res := make([]InternedString, len(unique))
	for i, s := range unique {
		res[i] = NewInternedString(s)
	}
	return res
}
