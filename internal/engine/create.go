package engine

import (
	"context"
)

// CreateBranch creates a branch of the given workflow type and switches to it.
// Every precondition is checked before the first checkout.
func (e *Engine) CreateBranch(ctx context.Context, branchType, name string) error {
	state, err := e.readState()
	if err != nil {
		return err
	}

	if err := e.requireWorkflow(state); err != nil {
		return err
	}

	t, err := e.rules.RequireBranchTypeAllowed(branchType)
	if err != nil {
		return err
	}

	// Naming before uniqueness: develop reports a type mismatch, not a collision.
	if err := e.rules.RequireNameMatchesType(t, name); err != nil {
		return err
	}

	if err := e.rules.RequireNameUnique(state, name); err != nil {
		return err
	}

	from := e.rules.BranchPoint(t)
	e.out.Debug("creating %s branch %s from %s", t, name, from)

	if err := e.runner.CheckoutBranch(ctx, from); err != nil {
		return err
	}
	if err := e.runner.CreateAndCheckoutBranch(ctx, name); err != nil {
		return err
	}

	e.out.Info("%s branch %s created...", t, name)
	e.out.Info("switching to %s branch %s...", t, name)
	return nil
}
