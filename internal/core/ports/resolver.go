package ports

import (
	"context"

	"go.trai.ch/shed/internal/core/domain"
)

// SourceResolver resolves a mutable source reference to one concrete
// snapshot. Resolution is performed entirely by the external evaluator;
// implementations only relay what it reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SourceResolver interface {
	// Resolve pins the named input's branch ref to a concrete revision.
	Resolve(ctx context.Context, name string, ref domain.SourceRef) (domain.PinnedSource, error)
}
