package git

import (
	"context"
	"fmt"
	"strings"
)

// PullResult represents the result of a pull operation
type PullResult int

const (
	// PullDone indicates the branch was fast-forwarded
	PullDone PullResult = iota
	// PullUnneeded indicates the branch was already up to date
	PullUnneeded
)

func (p PullResult) String() string {
	if p == PullUnneeded {
		return "up to date"
	}
	return "updated"
}

// PullBranch fast-forwards the checked out branch from remote
func (r *realRunner) PullBranch(ctx context.Context, remote, branchName string) (PullResult, error) {
	output, err := r.run(ctx, "pull", "--ff-only", remote, branchName)
	if err != nil {
		return PullDone, fmt.Errorf("failed to pull %s from %s: %w", branchName, remote, err)
	}
	if strings.Contains(output, "Already up to date") || strings.Contains(output, "Already up-to-date") {
		return PullUnneeded, nil
	}
	return PullDone, nil
}
