package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
	"gitflow.dev/gitflow/internal/runtime"
)

func newCommitCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit [message]",
		Short: "Stage all changes, commit and push the current branch",
		Long: `Stage all changes, commit and push the current branch.

Commits on master and develop are refused. On a release branch the commit is
also merged into develop.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := commitMessage(args, message, cmd.Flags().Changed("message"))
			if err != nil {
				return err
			}
			return run(cmd, func(ctx *runtime.Context) error {
				return actions.CommitAction(ctx, actions.CommitOptions{Message: msg})
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")

	return cmd
}

func commitMessage(args []string, flag string, flagSet bool) (string, error) {
	switch {
	case len(args) == 1 && flagSet:
		return "", fmt.Errorf("pass the commit message as an argument or with --message, not both")
	case len(args) == 1:
		return args[0], nil
	case flagSet:
		return flag, nil
	default:
		return "", fmt.Errorf("commit requires a message")
	}
}
