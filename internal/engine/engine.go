package engine

import (
	"errors"
	"fmt"

	"gitflow.dev/gitflow/internal/config"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
)

// Options configures an Engine
type Options struct {
	// Workflow overrides the branch names, prefixes and remote. Zero value means defaults.
	Workflow config.Workflow
	// Narrator receives progress messages. Nil silences them.
	Narrator Narrator
}

// Engine is the workflow state machine. It validates the repository state and
// then issues git operations through its Runner.
type Engine struct {
	runner git.Runner
	rules  Rules
	remote string
	out    Narrator
}

// New creates an Engine bound to an explicit repository handle
func New(runner git.Runner, opts Options) (*Engine, error) {
	if runner == nil {
		return nil, fmt.Errorf("engine requires a git runner")
	}

	wf := opts.Workflow
	if wf == (config.Workflow{}) {
		wf = config.DefaultWorkflow()
	}
	if err := wf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workflow: %w", err)
	}

	out := opts.Narrator
	if out == nil {
		out = nopNarrator{}
	}

	return &Engine{
		runner: runner,
		rules:  Rules{Names: wf},
		remote: wf.Remote,
		out:    out,
	}, nil
}

// Rules returns the validation rules the engine enforces
func (e *Engine) Rules() Rules {
	return e.rules
}

// Workflow returns the effective branch names and remote
func (e *Engine) Workflow() config.Workflow {
	return e.rules.Names
}

// readState reads the branch list and current branch. A detached HEAD yields
// an empty Current rather than an error; operations that need a branch check it.
func (e *Engine) readState() (RepoState, error) {
	branches, err := e.runner.GetAllBranchNames()
	if err != nil {
		return RepoState{}, fmt.Errorf("failed to get branches: %w", err)
	}

	current, err := e.runner.GetCurrentBranch()
	if err != nil {
		if !errors.Is(err, gferrors.ErrNotOnBranch) {
			return RepoState{}, fmt.Errorf("failed to get current branch: %w", err)
		}
		current = ""
	}

	return RepoState{Branches: branches, Current: current}, nil
}

// requireWorkflow checks the invariants shared by create, merge and commit
func (e *Engine) requireWorkflow(state RepoState) error {
	if err := e.rules.RequireMasterExists(state); err != nil {
		return err
	}
	return e.rules.RequireDevelopExists(state)
}

func requireOnBranch(state RepoState) error {
	if state.Current == "" {
		return fmt.Errorf("HEAD is detached, check out a branch first: %w", gferrors.ErrNotOnBranch)
	}
	return nil
}
