package actions

import (
	"fmt"
	"time"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/output"
	"gitflow.dev/gitflow/internal/runtime"
)

// MergeAction merges the current branch into its upstream branches and deletes it.
// Progress is recorded after every step so an interrupted merge can be resumed
// with ContinueAction.
func MergeAction(ctx *runtime.Context) error {
	if config.HasContinuationState(ctx.GitDir) {
		return gferrors.NewWorkflowError(gferrors.KindOperationInProgress, "",
			"an interrupted merge is waiting: run 'gitflow continue' or 'gitflow continue --abort'")
	}

	plan, err := ctx.Engine.PlanMerge()
	if err != nil {
		return err
	}

	if len(plan.Steps) == 0 {
		ctx.Splog.Debug("%s is a long-lived branch, nothing to merge", plan.Source)
		return nil
	}

	return runPlan(ctx, plan, ctx.Splog.RunID(), time.Now())
}

// runPlan executes plan, keeping the continuation file in step with its
// high-water mark. The file is removed once the plan finishes.
func runPlan(ctx *runtime.Context, plan *engine.MergePlan, runID string, startedAt time.Time) error {
	persist := func(p *engine.MergePlan) error {
		state := p.ToState(runID)
		state.StartedAt = startedAt
		return config.PersistContinuationState(ctx.GitDir, state)
	}

	if err := persist(plan); err != nil {
		return fmt.Errorf("failed to persist continuation: %w", err)
	}

	if err := ctx.Engine.ExecutePlan(ctx, plan, persist); err != nil {
		printInterrupted(ctx.Splog, plan)
		return err
	}

	if err := config.ClearContinuationState(ctx.GitDir); err != nil {
		ctx.Splog.Debug("Failed to clear continuation state: %v", err)
	}
	return nil
}

func printInterrupted(splog *output.Splog, plan *engine.MergePlan) {
	splog.Newline()
	splog.Warn("merge of %s stopped after %d of %d steps", plan.Source, plan.Completed, len(plan.Steps))
	for _, step := range plan.Remaining() {
		splog.Info("  - %s", step.String())
	}
	splog.Tip("fix the problem, then run 'gitflow continue' to resume or 'gitflow continue --abort' to give up")
}
