package actions

import (
	"fmt"
	"strings"

	"gitflow.dev/gitflow/internal/runtime"
)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	Message string
}

// CommitAction stages everything, commits and pushes the current branch
func CommitAction(ctx *runtime.Context, opts CommitOptions) error {
	if strings.TrimSpace(opts.Message) == "" {
		return fmt.Errorf("commit message must not be empty")
	}
	return ctx.Engine.CommitCurrentBranch(ctx, opts.Message)
}
