package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
	"gitflow.dev/gitflow/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		initFlag   bool
		newFlag    []string
		mergeFlag  bool
		commitFlag string
	)

	rootCmd := &cobra.Command{
		Use:   "gitflow",
		Short: "gitflow drives the master/develop branching workflow from the command line",
		Long: `gitflow drives the master/develop branching workflow from the command line.

Feature branches fork from develop, release branches fork from develop and
merge into master and develop, and hotfix branches fork from master and merge
into master, every other hotfix branch, and develop. Release and hotfix merges
into master are tagged with the branch suffix.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			// -n TYPE NAME leaves NAME as the only positional argument
			if cmd.Flags().Changed("new") && len(newFlag) == 1 {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.NoArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case initFlag:
				return run(cmd, actions.InitAction)
			case cmd.Flags().Changed("new"):
				typeAndName := append(append([]string{}, newFlag...), args...)
				if len(typeAndName) != 2 {
					return fmt.Errorf("--new expects TYPE NAME or TYPE,NAME, got %q", typeAndName)
				}
				return run(cmd, func(ctx *runtime.Context) error {
					return actions.CreateAction(ctx, actions.CreateOptions{BranchType: typeAndName[0], BranchName: typeAndName[1]})
				})
			case mergeFlag:
				return run(cmd, actions.MergeAction)
			case cmd.Flags().Changed("commit"):
				return run(cmd, func(ctx *runtime.Context) error {
					return actions.CommitAction(ctx, actions.CommitOptions{Message: commitFlag})
				})
			default:
				return cmd.Help()
			}
		},
	}

	rootCmd.Flags().BoolVarP(&initFlag, "init", "i", false, "Same as 'gitflow init'")
	rootCmd.Flags().StringSliceVarP(&newFlag, "new", "n", nil, "Same as 'gitflow new TYPE NAME', given as -n TYPE NAME or -n TYPE,NAME")
	rootCmd.Flags().BoolVarP(&mergeFlag, "merge", "m", false, "Same as 'gitflow merge'")
	rootCmd.Flags().StringVarP(&commitFlag, "commit", "c", "", "Same as 'gitflow commit MESSAGE'")
	rootCmd.MarkFlagsMutuallyExclusive("init", "new", "merge", "commit")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only print errors")

	rootCmd.AddCommand(
		newInitCmd(),
		newNewCmd(),
		newMergeCmd(),
		newCommitCmd(),
		newContinueCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
