package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shed/internal/core/ports"
)

const (
	ResolverNodeID graft.ID = "adapter.nix.resolver"
	RealizerNodeID graft.ID = "adapter.nix.realizer"
)

func init() {
	// Source Resolver Node
	graft.Register(graft.Node[ports.SourceResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SourceResolver, error) {
			return NewResolver(), nil
		},
	})

	// Environment Realizer Node
	graft.Register(graft.Node[ports.EnvironmentRealizer]{
		ID:        RealizerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.EnvironmentRealizer, error) {
			return NewRealizer(), nil
		},
	})
}
