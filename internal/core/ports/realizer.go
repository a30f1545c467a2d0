package ports

import (
	"context"

	"go.trai.ch/shed/internal/core/domain"
)

// EnvironmentRealizer materializes a declared dev shell into environment
// variables by delegating to the external evaluator.
//
// Implementations are responsible for:
//   - Rendering the descriptor and pins into an evaluator expression
//   - Invoking the external evaluator to realize the shell
//   - Caching realized environments keyed by the deterministic env ID
//
//go:generate go run go.uber.org/mock/mockgen -source=realizer.go -destination=mocks/mock_realizer.go -package=mocks
type EnvironmentRealizer interface {
	// Realize returns the shell's environment variables as "KEY=VALUE"
	// strings suitable for process execution. Every failure mode
	// (unreachable source, unknown package name) originates in the
	// external evaluator and is relayed with context attached.
	Realize(ctx context.Context, desc domain.EnvironmentDescriptor, inputs domain.ResolvedInputs) ([]string, error)
}
