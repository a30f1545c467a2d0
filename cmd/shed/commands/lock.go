package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Pin all declared inputs to concrete revisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lock, err := c.app.Lock(cmd.Context())
			if err != nil {
				return err
			}

			names := make([]string, 0, len(lock.Inputs))
			for name := range lock.Inputs {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				pin := lock.Inputs[name]
				_, _ = fmt.Fprintf(out, "%s: %s\n", name, pin.Rev)
			}
			return nil
		},
	}
}
