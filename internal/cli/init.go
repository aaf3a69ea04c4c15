package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the develop branch from master and switch to it",
		Long: `Create the develop branch from master and switch to it.

If develop already exists it is simply checked out. A new develop branch is
pushed to the remote.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, actions.InitAction)
		},
	}
}
