// Package app implements the application layer for shed.
package app

import (
	"context"
	"runtime"
	"sync"

	"go.trai.ch/shed/internal/adapters/nix" //nolint:depguard // Rendering is wired in the app layer
	"go.trai.ch/shed/internal/core/domain"
	"go.trai.ch/shed/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App orchestrates the declaration lifecycle: load, evaluate, pin, render,
// and enter. All resolution and building is delegated to the external
// evaluator behind the ports.
type App struct {
	loader    ports.ConfigLoader
	resolver  ports.SourceResolver
	lockStore ports.LockStore
	realizer  ports.EnvironmentRealizer
	executor  ports.Executor
	logger    ports.Logger
	tracer    ports.Tracer

	manifestPath string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.SourceResolver,
	lockStore ports.LockStore,
	realizer ports.EnvironmentRealizer,
	executor ports.Executor,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:    loader,
		resolver:  resolver,
		lockStore: lockStore,
		realizer:  realizer,
		executor:  executor,
		logger:    logger,
		tracer:    tracer,
	}
}

// SetManifestPath overrides manifest discovery with an explicit path.
func (a *App) SetManifestPath(path string) {
	a.manifestPath = path
}

// Show evaluates the declaration's outputs and returns the descriptor for
// the given platform key ("" selects the current platform).
func (a *App) Show(ctx context.Context, platformKey string) (domain.EnvironmentDescriptor, error) {
	decl, err := a.loadDeclaration()
	if err != nil {
		return domain.EnvironmentDescriptor{}, err
	}

	platform, err := a.selectPlatform(platformKey)
	if err != nil {
		return domain.EnvironmentDescriptor{}, err
	}

	resolved, err := a.resolvedInputs()
	if err != nil {
		return domain.EnvironmentDescriptor{}, err
	}

	outputs := decl.Outputs(resolved)
	desc, ok := outputs[platform]
	if !ok {
		return domain.EnvironmentDescriptor{}, zerr.With(domain.ErrUnknownPlatform, "platform", platform.String())
	}
	return desc, nil
}

// Render renders the declaration as a flake expression.
func (a *App) Render(_ context.Context) (string, error) {
	decl, err := a.loadDeclaration()
	if err != nil {
		return "", err
	}
	return nix.RenderFlake(decl), nil
}

// Lock resolves every declared input to a concrete snapshot and writes the
// lockfile. Inputs resolve concurrently.
func (a *App) Lock(ctx context.Context) (*domain.Lockfile, error) {
	decl, err := a.loadDeclaration()
	if err != nil {
		return nil, err
	}
	return a.lockInputs(ctx, decl)
}

// Enter realizes the dev shell for the given platform and runs argv inside
// it. An empty argv starts an interactive shell. Inputs are pinned on the
// fly when the lockfile is missing or stale.
func (a *App) Enter(ctx context.Context, platformKey string, argv []string) error {
	decl, err := a.loadDeclaration()
	if err != nil {
		return err
	}

	platform, err := a.selectPlatform(platformKey)
	if err != nil {
		return err
	}

	shell, err := decl.Shell(platform)
	if err != nil {
		return err
	}

	lock, err := a.lockStore.Load()
	if err != nil {
		return err
	}
	if lock == nil || !lock.Covers(decl) {
		a.logger.Warn("lockfile missing or stale, resolving inputs")
		if lock, err = a.lockInputs(ctx, decl); err != nil {
			return err
		}
	}

	_, span := a.tracer.Start(ctx, "realize "+platform.String())
	env, err := a.realizer.Realize(ctx, shell, lock.Resolved())
	if err != nil {
		span.RecordError(err)
		span.End()
		return zerr.Wrap(err, "failed to realize dev shell")
	}
	span.End()

	return a.executor.Run(ctx, argv, env)
}

// lockInputs resolves all declared inputs concurrently and saves the result.
func (a *App) lockInputs(ctx context.Context, decl *domain.Declaration) (*domain.Lockfile, error) {
	names := make([]string, 0, len(decl.Inputs))
	for name := range decl.Inputs {
		names = append(names, name)
	}
	a.tracer.EmitPlan(ctx, names)

	lock := domain.NewLockfile()
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for name, ref := range decl.Inputs {
		g.Go(func() error {
			_, span := a.tracer.Start(groupCtx, "resolve "+name)
			pin, err := a.resolver.Resolve(groupCtx, name, ref)
			if err != nil {
				span.RecordError(err)
				span.End()
				return err
			}
			span.SetAttribute("rev", pin.Rev)
			span.End()

			mu.Lock()
			lock.Pin(name, pin)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "failed to resolve inputs")
	}

	if err := a.lockStore.Save(lock); err != nil {
		return nil, err
	}

	a.logger.Info("pinned declared inputs")
	return lock, nil
}

// loadDeclaration loads the manifest, discovering it from the working
// directory unless an explicit path was set.
func (a *App) loadDeclaration() (*domain.Declaration, error) {
	path := a.manifestPath
	if path == "" {
		discovered, err := a.loader.Discover(".")
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	decl, err := a.loader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}
	return decl, nil
}

// selectPlatform parses an explicit platform key or falls back to the
// current platform.
func (a *App) selectPlatform(platformKey string) (domain.Platform, error) {
	if platformKey == "" {
		return domain.CurrentPlatform(), nil
	}
	return domain.ParsePlatform(platformKey)
}

// resolvedInputs loads the lockfile contents if present. Evaluation of the
// outputs mapping does not require pins; an empty set is returned when
// nothing is locked yet.
func (a *App) resolvedInputs() (domain.ResolvedInputs, error) {
	lock, err := a.lockStore.Load()
	if err != nil {
		return nil, err
	}
	if lock == nil {
		return domain.ResolvedInputs{}, nil
	}
	return lock.Resolved(), nil
}
