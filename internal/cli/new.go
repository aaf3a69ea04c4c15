package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/actions"
	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	"gitflow.dev/gitflow/internal/output"
	"gitflow.dev/gitflow/internal/runtime"
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <type> <name>",
		Short: "Create a feature, release or hotfix branch and switch to it",
		Long: `Create a feature, release or hotfix branch and switch to it.

Features fork from develop and must not use a reserved name or prefix.
Releases fork from develop and must start with the release prefix.
Hotfixes fork from master and must start with the hotfix prefix.

When run in a terminal without arguments, the type and name are prompted for.`,
		Example: `  gitflow new feature login-form
  gitflow new release release-1.2
  gitflow new hotfix hotfix-1.1.1`,
		Args:      cobra.MaximumNArgs(2),
		ValidArgs: branchTypeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx *runtime.Context) error {
				branchType, name, err := resolveNewArgs(args, ctx.Engine.Workflow())
				if err != nil {
					return err
				}
				return actions.CreateAction(ctx, actions.CreateOptions{BranchType: branchType, BranchName: name})
			})
		},
	}
}

func branchTypeNames() []string {
	names := make([]string, len(engine.BranchTypes))
	for i, t := range engine.BranchTypes {
		names[i] = string(t)
	}
	return names
}

// resolveNewArgs fills in missing arguments by prompting when interactive
func resolveNewArgs(args []string, wf config.Workflow) (string, string, error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	if !output.IsInteractive() {
		return "", "", fmt.Errorf("new requires <type> <name>")
	}

	var branchType string
	if len(args) == 1 {
		branchType = args[0]
	} else {
		t, err := output.PromptBranchType(branchTypeNames())
		if err != nil {
			return "", "", err
		}
		branchType = t
	}

	name, err := output.PromptBranchName(branchType, namePrefix(branchType, wf))
	if err != nil {
		return "", "", err
	}
	return branchType, name, nil
}

func namePrefix(branchType string, wf config.Workflow) string {
	switch engine.BranchType(strings.ToLower(branchType)) {
	case engine.BranchTypeRelease:
		return wf.ReleasePrefix
	case engine.BranchTypeHotfix:
		return wf.HotfixPrefix
	default:
		return ""
	}
}
