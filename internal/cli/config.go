package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective workflow configuration",
		Long: `Print the effective workflow configuration.

Values come from .gitflow.yml at the repository root; missing keys use the
defaults (origin, master, develop, release-, hotfix-).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, actions.ConfigAction)
		},
	}
}
