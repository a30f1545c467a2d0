package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [command...]",
		Short: "Run a command inside the dev shell",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			platform, _ := cmd.Flags().GetString("platform")
			return c.app.Enter(cmd.Context(), platform, args)
		},
	}
	cmd.Flags().StringP("platform", "p", "", "Target platform (default: current platform)")
	return cmd
}
