// Package runtime provides a context type that holds the engine and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"context"
	"fmt"
	"os"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/output"
)

// Context provides access to engine and output for commands
type Context struct {
	context.Context
	Engine   *engine.Engine
	Splog    *output.Splog
	RepoRoot string
	GitDir   string
}

// NewContext wires an engine around runner using the workflow config found at repoRoot
func NewContext(ctx context.Context, runner git.Runner, splog *output.Splog, repoRoot, gitDir string) (*Context, error) {
	wf, err := config.LoadWorkflow(repoRoot)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(runner, engine.Options{Workflow: wf, Narrator: splog})
	if err != nil {
		return nil, err
	}

	return &Context{
		Context:  ctx,
		Engine:   eng,
		Splog:    splog,
		RepoRoot: repoRoot,
		GitDir:   gitDir,
	}, nil
}

// GetContext opens the repository containing the working directory
func GetContext(ctx context.Context, splog *output.Splog) (*Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	runner := git.NewRealRunner(cwd)
	repoRoot, err := runner.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	gitDir, err := git.GetGitDir(ctx, cwd)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	return NewContext(ctx, runner, splog, repoRoot, gitDir)
}

// NewSplogFromEnv builds the invocation logger from GITFLOW_* and DEBUG
// variables. Console styling is enabled only when stdout is a terminal.
func NewSplogFromEnv() (*output.Splog, error) {
	color := output.IsStdoutTTY()
	output.ConfigureColor(color)

	return output.NewSplogWithOptions(output.Options{
		LogFile: output.GetLogFilePath(),
		Debug:   os.Getenv("DEBUG") != "",
		Color:   color,
	})
}
