package commands

import (
	"github.com/spf13/cobra"
)

func newPlanCmd(ctx *appContext) *cobra.Command {
	opts := configureCommandOptions{dryRun: true, yes: true}

	cmd := &cobra.Command{
		Use:   "plan [project-dir]",
		Short: "Preview the resolved answers and file changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigureWithOptions(cmd, ctx, args, opts)
		},
	}
	addProjectFlags(cmd, &opts)
	return cmd
}
