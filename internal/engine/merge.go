package engine

import (
	"context"
	"fmt"
)

// MergeCurrentBranch merges the current branch into its upstream branches and
// deletes it locally and on the remote. On master or develop it does nothing.
// A failing git call aborts the operation; finished merges are not rolled back.
func (e *Engine) MergeCurrentBranch(ctx context.Context) error {
	plan, err := e.PlanMerge()
	if err != nil {
		return err
	}
	return e.ExecutePlan(ctx, plan, nil)
}

// ExecutePlan runs the remaining steps of plan in order. After each step the
// high-water mark is advanced and checkpoint, if non-nil, is called with the plan.
func (e *Engine) ExecutePlan(ctx context.Context, plan *MergePlan, checkpoint func(*MergePlan) error) error {
	if plan.Completed > 0 {
		e.out.Info("resuming %s after %d of %d steps...", plan.Source, plan.Completed, len(plan.Steps))
	}

	for !plan.Done() {
		step := plan.Steps[plan.Completed]
		e.out.Debug("step %d/%d: %s", plan.Completed+1, len(plan.Steps), step)

		if err := e.runStep(ctx, plan, step); err != nil {
			return err
		}

		plan.Completed++
		if checkpoint != nil {
			if err := checkpoint(plan); err != nil {
				return fmt.Errorf("failed to record progress: %w", err)
			}
		}
	}
	return nil
}

func (e *Engine) runStep(ctx context.Context, plan *MergePlan, step Step) error {
	switch step.Kind {
	case StepMerge:
		return e.mergeBranch(ctx, step.Source, step.Target)
	case StepTag:
		if plan.Resumed {
			exists, err := e.runner.TagExists(step.Target)
			if err != nil {
				return err
			}
			if exists {
				e.out.Info("tag %s already exists, pushing it...", step.Target)
				return e.runner.PushTag(ctx, e.remote, step.Target)
			}
		}
		return e.tagMaster(ctx, step.Source, step.Target)
	case StepDeleteLocal:
		e.out.Info("attempting to delete local branch %s...", step.Source)
		return e.runner.DeleteBranch(ctx, step.Source)
	case StepDeleteRemote:
		e.out.Info("attempting to delete remote branch %s/%s...", e.remote, step.Source)
		return e.runner.DeleteRemoteBranch(ctx, e.remote, step.Source)
	default:
		return fmt.Errorf("unknown merge step %q", step.Kind)
	}
}

// MergeInto is the merge-to-target primitive: checkout target, pull it, merge
// source with a merge commit, push target, and tag master when source is a
// release or hotfix branch.
func (e *Engine) MergeInto(ctx context.Context, source, target string) error {
	for _, step := range e.mergeSteps(source, target) {
		if err := e.runStep(ctx, &MergePlan{Source: source}, step); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) mergeBranch(ctx context.Context, source, target string) error {
	e.out.Info("checking out %s branch...", target)
	if err := e.runner.CheckoutBranch(ctx, target); err != nil {
		return err
	}

	e.out.Info("ensuring %s branch is up to date...", target)
	result, err := e.runner.PullBranch(ctx, e.remote, target)
	if err != nil {
		return err
	}
	e.out.Debug("%s is %s", target, result)

	e.out.Info("attempting merge to %s branch...", target)
	if err := e.runner.MergeNoFF(ctx, source); err != nil {
		return err
	}

	e.out.Info("attempting push to remote %s branch...", target)
	if err := e.runner.PushBranch(ctx, e.remote, target); err != nil {
		return err
	}
	e.out.Info("merge successful...")
	return nil
}

func (e *Engine) tagMaster(ctx context.Context, source, tag string) error {
	e.out.Info("tagging %s with %s name %s...", e.rules.Names.Master, e.rules.Classify(source), tag)
	if err := e.runner.CreateTag(ctx, tag, fmt.Sprintf("%s %s", e.rules.Classify(source), tag)); err != nil {
		return err
	}

	e.out.Info("pushing tag to remote...")
	return e.runner.PushTag(ctx, e.remote, tag)
}
