package nix

import "go.trai.ch/shed/internal/core/domain"

// GeneratePinnedExprForTest exposes generatePinnedExpr for determinism tests.
func GeneratePinnedExprForTest(shell domain.EnvironmentDescriptor, pin domain.PinnedSource) string {
	return generatePinnedExpr(shell, pin)
}

// ParseFlakeMetadataForTest exposes parseFlakeMetadata for tests.
func ParseFlakeMetadataForTest(data []byte) (domain.PinnedSource, error) {
	return parseFlakeMetadata(data)
}
