package ports

import "context"

// Executor runs a process inside a realized shell environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes argv with the given environment attached to the
	// caller's terminal. An empty argv starts an interactive shell.
	//
	// The env parameter contains environment variables in "KEY=VALUE"
	// format, typically provided by an EnvironmentRealizer.
	Run(ctx context.Context, argv []string, env []string) error
}
