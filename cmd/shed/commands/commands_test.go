package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shed/cmd/shed/commands"
	"go.trai.ch/shed/internal/build"
	"go.trai.ch/shed/internal/core/domain"
)

type mockApp struct {
	showFunc   func(ctx context.Context, platformKey string) (domain.EnvironmentDescriptor, error)
	renderFunc func(ctx context.Context) (string, error)
	lockFunc   func(ctx context.Context) (*domain.Lockfile, error)
	enterFunc  func(ctx context.Context, platformKey string, argv []string) error
}

func (m *mockApp) Show(ctx context.Context, platformKey string) (domain.EnvironmentDescriptor, error) {
	if m.showFunc != nil {
		return m.showFunc(ctx, platformKey)
	}
	return domain.EnvironmentDescriptor{}, nil
}

func (m *mockApp) Render(ctx context.Context) (string, error) {
	if m.renderFunc != nil {
		return m.renderFunc(ctx)
	}
	return "", nil
}

func (m *mockApp) Lock(ctx context.Context) (*domain.Lockfile, error) {
	if m.lockFunc != nil {
		return m.lockFunc(ctx)
	}
	return domain.NewLockfile(), nil
}

func (m *mockApp) Enter(ctx context.Context, platformKey string, argv []string) error {
	if m.enterFunc != nil {
		return m.enterFunc(ctx, platformKey, argv)
	}
	return nil
}

func TestCommands_Show(t *testing.T) {
	t.Run("prints declared packages", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(_ context.Context, platformKey string) (domain.EnvironmentDescriptor, error) {
				assert.Equal(t, "x86_64-linux", platformKey)
				return domain.EnvironmentDescriptor{
					Platform: "x86_64-linux",
					Packages: []domain.PackageSpec{
						{
							Name: domain.NewInternedString("python312"),
							With: []domain.InternedString{domain.NewInternedString("numpy")},
						},
					},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"show", "x86_64-linux"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "x86_64-linux")
		assert.Contains(t, buf.String(), "python312 (with numpy)")
	})

	t.Run("defaults to current platform", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			showFunc: func(_ context.Context, platformKey string) (domain.EnvironmentDescriptor, error) {
				captured = platformKey
				return domain.EnvironmentDescriptor{Platform: domain.CurrentPlatform()}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"show"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured)
	})

	t.Run("returns error for unknown platform", func(t *testing.T) {
		mock := &mockApp{
			showFunc: func(_ context.Context, _ string) (domain.EnvironmentDescriptor, error) {
				return domain.EnvironmentDescriptor{}, domain.ErrUnknownPlatform
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"show", "riscv64-linux"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
	})
}

func TestCommands_Print(t *testing.T) {
	mock := &mockApp{
		renderFunc: func(_ context.Context) (string, error) {
			return "{\n  description = \"demo\";\n}\n", nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"print"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "description = \"demo\";")
}

func TestCommands_Lock(t *testing.T) {
	t.Run("prints pinned revisions", func(t *testing.T) {
		mock := &mockApp{
			lockFunc: func(_ context.Context) (*domain.Lockfile, error) {
				lock := domain.NewLockfile()
				lock.Pin("nixpkgs", domain.PinnedSource{Rev: "0123abcd"})
				return lock, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"lock"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "nixpkgs: 0123abcd")
	})

	t.Run("returns error on resolution failure", func(t *testing.T) {
		mock := &mockApp{
			lockFunc: func(_ context.Context) (*domain.Lockfile, error) {
				return nil, errors.New("unreachable source")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"lock"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unreachable source")
	})
}

func TestCommands_Shell(t *testing.T) {
	var capturedPlatform string
	var capturedArgv []string
	called := false

	mock := &mockApp{
		enterFunc: func(_ context.Context, platformKey string, argv []string) error {
			capturedPlatform = platformKey
			capturedArgv = argv
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"shell", "--platform", "aarch64-darwin"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Equal(t, "aarch64-darwin", capturedPlatform)
	assert.Nil(t, capturedArgv)
}

func TestCommands_Run(t *testing.T) {
	t.Run("forwards argv", func(t *testing.T) {
		var capturedArgv []string
		mock := &mockApp{
			enterFunc: func(_ context.Context, _ string, argv []string) error {
				capturedArgv = argv
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "python3", "main.py"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"python3", "main.py"}, capturedArgv)
	})

	t.Run("shows usage when no command provided", func(t *testing.T) {
		mock := &mockApp{
			enterFunc: func(_ context.Context, _ string, _ []string) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
