package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <recipe-dir>",
		Short: "Print the fully resolved recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.app.Render(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
