package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [platform]",
		Short: "Show the dev shell declared for a platform",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			platformKey := ""
			if len(args) == 1 {
				platformKey = args[0]
			}

			desc, err := c.app.Show(cmd.Context(), platformKey)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n", desc.Platform)
			for _, pkg := range desc.Packages {
				if len(pkg.With) == 0 {
					_, _ = fmt.Fprintf(out, "  %s\n", pkg.Name)
					continue
				}
				exts := make([]string, len(pkg.With))
				for i, ext := range pkg.With {
					exts[i] = ext.String()
				}
				_, _ = fmt.Fprintf(out, "  %s (with %s)\n", pkg.Name, strings.Join(exts, ", "))
			}
			return nil
		},
	}
}
