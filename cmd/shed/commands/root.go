// Package commands implements the CLI commands for the shed dev shell tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/shed/internal/build"
	"go.trai.ch/shed/internal/core/domain"
)

// CLI represents the command line interface for shed.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Show(ctx context.Context, platformKey string) (domain.EnvironmentDescriptor, error)
	Render(ctx context.Context) (string, error)
	Lock(ctx context.Context) (*domain.Lockfile, error)
	Enter(ctx context.Context, platformKey string, argv []string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "shed",
		Short:         "Declarative, reproducible dev shells backed by Nix",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the manifest file (default: discover shed.yaml upwards)")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newPrintCmd())
	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newShellCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetManifestHook sets up a PersistentPreRun function that retrieves the
// config flag and calls the provided callback with the manifest path when one
// was given explicitly.
func (c *CLI) SetManifestHook(fn func(string)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		if path != "" {
			fn(path)
		}
		return nil
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
