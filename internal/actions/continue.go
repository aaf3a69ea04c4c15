package actions

import (
	"time"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/runtime"
)

// ContinueOptions are options for the continue command
type ContinueOptions struct {
	// Abort discards the continuation state without running anything
	Abort bool
}

// ContinueAction resumes an interrupted merge from its high-water mark
func ContinueAction(ctx *runtime.Context, opts ContinueOptions) error {
	state, err := config.GetContinuationState(ctx.GitDir)
	if err != nil {
		return err
	}
	if state == nil {
		return gferrors.NewWorkflowError(gferrors.KindNoOperationInProgress, "", "no interrupted merge to continue")
	}

	if opts.Abort {
		if err := config.ClearContinuationState(ctx.GitDir); err != nil {
			return err
		}
		ctx.Splog.Info("Discarded interrupted merge of %s. Completed steps were not undone.", state.Source)
		return nil
	}

	plan, err := engine.PlanFromState(state)
	if err != nil {
		return err
	}
	ctx.Splog.Debug("continuing run %s", state.RunID)

	startedAt := state.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	return runPlan(ctx, plan, state.RunID, startedAt)
}
