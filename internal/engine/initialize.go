package engine

import (
	"context"
)

// Initialize ensures develop exists and leaves the caller on it. A missing
// develop is created from the current position and pushed; an existing one is
// only checked out.
func (e *Engine) Initialize(ctx context.Context) error {
	state, err := e.readState()
	if err != nil {
		return err
	}

	if err := e.rules.RequireMasterExists(state); err != nil {
		return err
	}

	develop := e.rules.Names.Develop
	if state.Has(develop) {
		if err := e.runner.CheckoutBranch(ctx, develop); err != nil {
			return err
		}
		e.out.Info("%s branch already created...", develop)
		e.out.Info("switching to %s branch", develop)
		return nil
	}

	if err := e.runner.CreateAndCheckoutBranch(ctx, develop); err != nil {
		return err
	}
	e.out.Info("%s branch created...", develop)
	e.out.Info("switching to %s branch", develop)

	e.out.Info("pushing %s branch to %s...", develop, e.remote)
	return e.runner.PushBranch(ctx, e.remote, develop)
}
