package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Enter an interactive dev shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			platform, _ := cmd.Flags().GetString("platform")
			return c.app.Enter(cmd.Context(), platform, nil)
		},
	}
	cmd.Flags().StringP("platform", "p", "", "Target platform (default: current platform)")
	return cmd
}
