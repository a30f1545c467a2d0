package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// GenerateEnvID creates a deterministic hash identifying a realized
// environment: the descriptor's package set plus the pinned revisions it was
// built against. Used as the cache key for realized shells.
func GenerateEnvID(desc EnvironmentDescriptor, inputs ResolvedInputs) string {
	h := xxhash.New()

	canonical := desc.Canonical()
	writeField(h, string(canonical.Platform))
	for _, pkg := range canonical.Packages {
		writeField(h, pkg.Name.String())
		for _, ext := range pkg.With {
			writeField(h, ext.String())
		}
	}

	// Sort input names for deterministic ordering
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		writeField(h, name)
		writeField(h, inputs[name].Rev)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}

func writeField(h *xxhash.Digest, s string) {
	_, _ = h.WriteString(s)
	// Separator avoids collisions like ["ab","c"] vs ["a","bc"]
	_, _ = h.Write([]byte{0})
}
