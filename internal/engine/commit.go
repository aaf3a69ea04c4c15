package engine

import (
	"context"
)

// CommitCurrentBranch stages everything, commits with message and pushes the
// current branch. A release branch is also merged into develop, and the caller
// is returned to the release branch afterwards.
func (e *Engine) CommitCurrentBranch(ctx context.Context, message string) error {
	state, err := e.readState()
	if err != nil {
		return err
	}

	if err := e.requireWorkflow(state); err != nil {
		return err
	}
	if err := requireOnBranch(state); err != nil {
		return err
	}
	if err := e.rules.RequireNotLongLived(state.Current); err != nil {
		return err
	}

	current := state.Current

	e.out.Info("attempting commit...")
	if err := e.runner.StageAll(ctx); err != nil {
		return err
	}
	if err := e.runner.Commit(ctx, message); err != nil {
		return err
	}

	e.out.Info("attempting push to remote...")
	if err := e.runner.PushBranch(ctx, e.remote, current); err != nil {
		return err
	}
	e.out.Info("commit successful")

	if e.rules.Classify(current) != KindRelease {
		return nil
	}

	if err := e.MergeInto(ctx, current, e.rules.Names.Develop); err != nil {
		return err
	}
	e.out.Info("switching back to %s branch...", current)
	return e.runner.CheckoutBranch(ctx, current)
}
