package actions

import (
	"gitflow.dev/gitflow/internal/runtime"
)

// CreateOptions contains options for the new command
type CreateOptions struct {
	BranchType string
	BranchName string
}

// CreateAction creates a feature, release or hotfix branch and switches to it
func CreateAction(ctx *runtime.Context, opts CreateOptions) error {
	return ctx.Engine.CreateBranch(ctx, opts.BranchType, opts.BranchName)
}
