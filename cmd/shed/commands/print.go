package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the declaration as a flake expression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			expr, err := c.app.Render(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), expr)
			return nil
		},
	}
}
