package engine

import (
	"fmt"
	"strings"

	"gitflow.dev/gitflow/internal/config"
)

// StepKind identifies one action in a merge plan
type StepKind string

const (
	// StepMerge checks out Target, pulls it, merges Source with --no-ff and pushes Target
	StepMerge StepKind = "merge"
	// StepTag creates the annotated tag Target on master and pushes it
	StepTag StepKind = "tag"
	// StepDeleteLocal deletes the local Source branch
	StepDeleteLocal StepKind = "delete-local"
	// StepDeleteRemote deletes Source on the remote
	StepDeleteRemote StepKind = "delete-remote"
)

// Step is one idempotent action of a merge plan
type Step struct {
	Kind   StepKind
	Source string
	Target string
}

func (s Step) String() string {
	switch s.Kind {
	case StepMerge:
		return fmt.Sprintf("merge %s into %s", s.Source, s.Target)
	case StepTag:
		return fmt.Sprintf("tag %s", s.Target)
	case StepDeleteLocal:
		return fmt.Sprintf("delete local branch %s", s.Source)
	case StepDeleteRemote:
		return fmt.Sprintf("delete remote branch %s", s.Source)
	default:
		return string(s.Kind)
	}
}

// MergePlan is the ordered list of steps that merges Source into its upstream
// branches and cleans it up. Completed is the high-water mark: steps before it
// have finished and are skipped when the plan is resumed.
type MergePlan struct {
	Source    string
	Steps     []Step
	Completed int
	// Resumed is set when the plan was loaded from continuation state
	Resumed bool
}

// Done reports whether every step has completed
func (p *MergePlan) Done() bool {
	return p.Completed >= len(p.Steps)
}

// Remaining returns the steps not yet completed
func (p *MergePlan) Remaining() []Step {
	if p.Done() {
		return nil
	}
	return p.Steps[p.Completed:]
}

// ToState converts the plan to its on-disk continuation form
func (p *MergePlan) ToState(runID string) *config.ContinuationState {
	steps := make([]config.ContinuationStep, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = config.ContinuationStep{Kind: string(s.Kind), Source: s.Source, Target: s.Target}
	}
	return &config.ContinuationState{
		RunID:     runID,
		Operation: "merge",
		Source:    p.Source,
		Steps:     steps,
		Completed: p.Completed,
	}
}

// PlanFromState rebuilds a plan from continuation state
func PlanFromState(state *config.ContinuationState) (*MergePlan, error) {
	plan := &MergePlan{
		Source:    state.Source,
		Completed: state.Completed,
		Resumed:   true,
	}
	for _, s := range state.Steps {
		kind := StepKind(s.Kind)
		switch kind {
		case StepMerge, StepTag, StepDeleteLocal, StepDeleteRemote:
		default:
			return nil, fmt.Errorf("unknown step %q in continuation state", s.Kind)
		}
		plan.Steps = append(plan.Steps, Step{Kind: kind, Source: s.Source, Target: s.Target})
	}
	if plan.Completed < 0 || plan.Completed > len(plan.Steps) {
		return nil, fmt.Errorf("continuation state is corrupt: %d of %d steps completed", plan.Completed, len(plan.Steps))
	}
	return plan, nil
}

// mergeSteps returns the merge step for source into target, followed by a tag
// step when source is a release or hotfix branch merged into master.
func (e *Engine) mergeSteps(source, target string) []Step {
	steps := []Step{{Kind: StepMerge, Source: source, Target: target}}
	if target == e.rules.Names.Master {
		if tag, ok := e.rules.TagName(source); ok {
			steps = append(steps, Step{Kind: StepTag, Source: source, Target: tag})
		}
	}
	return steps
}

// PlanMerge validates the repository and builds the merge plan for the
// current branch. Any branch whose name starts with master or develop gets a
// plan with no steps.
func (e *Engine) PlanMerge() (*MergePlan, error) {
	state, err := e.readState()
	if err != nil {
		return nil, err
	}

	if err := e.requireWorkflow(state); err != nil {
		return nil, err
	}
	if err := requireOnBranch(state); err != nil {
		return nil, err
	}

	names := e.rules.Names
	source := state.Current
	plan := &MergePlan{Source: source}

	if strings.HasPrefix(source, names.Master) || strings.HasPrefix(source, names.Develop) {
		return plan, nil
	}

	deleteLocal := Step{Kind: StepDeleteLocal, Source: source}
	deleteRemote := Step{Kind: StepDeleteRemote, Source: source}

	switch e.rules.Classify(source) {
	case KindFeature:
		plan.Steps = append(plan.Steps, e.mergeSteps(source, names.Develop)...)
		plan.Steps = append(plan.Steps, deleteRemote, deleteLocal)

	case KindRelease:
		plan.Steps = append(plan.Steps, e.mergeSteps(source, names.Master)...)
		plan.Steps = append(plan.Steps, e.mergeSteps(source, names.Develop)...)
		plan.Steps = append(plan.Steps, deleteLocal, deleteRemote)

	case KindHotfix:
		plan.Steps = append(plan.Steps, e.mergeSteps(source, names.Master)...)
		var others []string
		for _, b := range state.Branches {
			if b != source && e.rules.Classify(b) == KindHotfix {
				others = append(others, b)
			}
		}
		if len(others) > 0 {
			for _, other := range others {
				plan.Steps = append(plan.Steps, e.mergeSteps(source, other)...)
				plan.Steps = append(plan.Steps, e.mergeSteps(source, names.Develop)...)
			}
		} else {
			plan.Steps = append(plan.Steps, e.mergeSteps(source, names.Develop)...)
		}
		plan.Steps = append(plan.Steps, deleteLocal, deleteRemote)
	}

	return plan, nil
}
