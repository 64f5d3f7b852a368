package commands

import (
	"github.com/spf13/cobra"

	"github.com/michellab/protopack/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var (
		force bool
		jobs  int
	)

	cmd := &cobra.Command{
		Use:   "build [recipe-dirs...]",
		Short: "Build recipes into the installation prefix",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Build(cmd.Context(), args, app.BuildOptions{
				Prefix:      c.prefixFlag(),
				Parallelism: jobs,
				Force:       force,
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Rebuild even when the installed manifest matches")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of packages to build concurrently (default: number of CPUs)")

	return cmd
}
