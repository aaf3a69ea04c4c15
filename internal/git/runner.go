package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	gferrors "gitflow.dev/gitflow/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", gferrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", gferrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// GetGitDir returns the absolute git directory for dir. In a linked worktree
// this is the worktree's own directory under .git/worktrees.
func GetGitDir(ctx context.Context, dir string) (string, error) {
	out, err := NewCommandRunner(dir).Run(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(out) {
		return out, nil
	}
	base, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return filepath.Join(base, out), nil
}

// Runner is the repository collaborator used by the workflow engine.
// Reads go through go-git, mutations shell out to the git binary.
type Runner interface {
	// Repository state
	GetRepoRoot() (string, error)
	GetAllBranchNames() ([]string, error)
	GetCurrentBranch() (string, error)
	TagExists(name string) (bool, error)

	// Branch management
	CheckoutBranch(ctx context.Context, branchName string) error
	CreateAndCheckoutBranch(ctx context.Context, branchName string) error
	DeleteBranch(ctx context.Context, branchName string) error
	DeleteRemoteBranch(ctx context.Context, remote, branchName string) error

	// Remote operations
	PullBranch(ctx context.Context, remote, branchName string) (PullResult, error)
	PushBranch(ctx context.Context, remote, branchName string) error
	PushTag(ctx context.Context, remote, tagName string) error

	// History
	MergeNoFF(ctx context.Context, sourceBranch string) error
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	CreateTag(ctx context.Context, tagName, message string) error
}

// NewRealRunner returns a Runner bound to the repository containing dir.
// An empty dir means the process working directory.
func NewRealRunner(dir string) Runner {
	return &realRunner{
		workingDir: dir,
		cmd:        NewCommandRunner(dir),
	}
}

// realRunner implements Runner against an on-disk repository
type realRunner struct {
	workingDir string
	cmd        *CommandRunner
}

func (r *realRunner) run(ctx context.Context, args ...string) (string, error) {
	return r.cmd.Run(ctx, args...)
}

// open reopens the repository on every read so branch state is never stale
func (r *realRunner) open() (*Repository, error) {
	dir := r.workingDir
	if dir == "" {
		dir = "."
	}
	return OpenRepository(dir)
}

func (r *realRunner) GetRepoRoot() (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	return repo.GetRepoRoot(), nil
}

func (r *realRunner) GetAllBranchNames() ([]string, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}
	return repo.GetBranchNames()
}

func (r *realRunner) GetCurrentBranch() (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	return repo.GetCurrentBranch()
}

func (r *realRunner) TagExists(name string) (bool, error) {
	repo, err := r.open()
	if err != nil {
		return false, err
	}
	return repo.HasTag(name)
}
