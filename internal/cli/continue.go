package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
	"gitflow.dev/gitflow/internal/runtime"
)

// newContinueCmd creates the continue command
func newContinueCmd() *cobra.Command {
	var abort bool

	cmd := &cobra.Command{
		Use:   "continue",
		Short: "Resume a merge that stopped on a failing git command",
		Long: `Resume a merge that stopped on a failing git command.

Steps that already finished are skipped. With --abort the recorded progress is
discarded instead; completed merges, tags and deletions are not undone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx *runtime.Context) error {
				return actions.ContinueAction(ctx, actions.ContinueOptions{Abort: abort})
			})
		},
	}

	cmd.Flags().BoolVar(&abort, "abort", false, "Discard the interrupted merge")

	return cmd
}
