package git

import (
	"context"
	"fmt"
)

// PushBranch pushes a branch to remote and sets its upstream
func (r *realRunner) PushBranch(ctx context.Context, remote, branchName string) error {
	_, err := r.run(ctx, "push", "-u", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}

// PushTag pushes a single tag to remote
func (r *realRunner) PushTag(ctx context.Context, remote, tagName string) error {
	_, err := r.run(ctx, "push", remote, "refs/tags/"+tagName)
	if err != nil {
		return fmt.Errorf("failed to push tag %s: %w", tagName, err)
	}
	return nil
}
