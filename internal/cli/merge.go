package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge the current branch into its upstream branches and delete it",
		Long: `Merge the current branch into its upstream branches and delete it.

  feature  -> develop
  release  -> master (tagged), develop
  hotfix   -> master (tagged), each other hotfix branch, develop

Each target is checked out, pulled, merged with --no-ff and pushed. The branch
is then deleted locally and on the remote. On master or develop nothing happens.
If a step fails, fix the problem and run 'gitflow continue'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, actions.MergeAction)
		},
	}
}
