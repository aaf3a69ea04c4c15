package git

import (
	"context"
	"fmt"
)

// StageAll stages all changes including untracked files
func (r *realRunner) StageAll(ctx context.Context) error {
	_, err := r.run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message
func (r *realRunner) Commit(ctx context.Context, message string) error {
	_, err := r.run(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// MergeNoFF merges sourceBranch into the checked out branch, always creating a merge commit
func (r *realRunner) MergeNoFF(ctx context.Context, sourceBranch string) error {
	_, err := r.run(ctx, "merge", "--no-ff", "--no-edit", sourceBranch)
	if err != nil {
		return fmt.Errorf("failed to merge %s: %w", sourceBranch, err)
	}
	return nil
}

// CreateTag creates an annotated tag at HEAD
func (r *realRunner) CreateTag(ctx context.Context, tagName, message string) error {
	if message == "" {
		message = tagName
	}
	_, err := r.run(ctx, "tag", "-a", tagName, "-m", message)
	if err != nil {
		return fmt.Errorf("failed to create tag %s: %w", tagName, err)
	}
	return nil
}
