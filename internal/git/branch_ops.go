package git

import (
	"context"
	"fmt"
)

// CreateAndCheckoutBranch creates and checks out a new branch at HEAD
func (r *realRunner) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.run(ctx, "checkout", "-b", branchName)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutBranch checks out an existing branch
func (r *realRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := r.run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch deletes a fully merged local branch
func (r *realRunner) DeleteBranch(ctx context.Context, branchName string) error {
	_, err := r.run(ctx, "branch", "-d", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteRemoteBranch deletes a branch on the remote
func (r *realRunner) DeleteRemoteBranch(ctx context.Context, remote, branchName string) error {
	_, err := r.run(ctx, "push", "--delete", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to delete remote branch %s/%s: %w", remote, branchName, err)
	}
	return nil
}
