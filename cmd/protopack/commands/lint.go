package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [recipe-dirs...]",
		Short: "Validate recipes without building",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Lint(cmd.Context(), args); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d recipe(s) OK\n", len(args))
			return nil
		},
	}
}
