package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List packages installed in the prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifests, err := c.app.List(cmd.Context(), c.prefixFlag())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERSION\tBUILD\tHASH")
			for _, m := range manifests {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, m.Version, m.BuildString, m.TreeHash)
			}
			return w.Flush()
		},
	}
}
