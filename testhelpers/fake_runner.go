package testhelpers

import (
	"context"
	"fmt"
	"slices"
	"strings"

	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
)

// FakeRunner implements git.Runner in memory and records every mutating call
// as a short command string, e.g. "checkout develop" or "push origin develop".
type FakeRunner struct {
	Branches []string
	Current  string
	Tags     []string
	Calls    []string

	// FailOn maps a call string to the error it should return
	FailOn map[string]error
	// Detached makes GetCurrentBranch report a detached HEAD
	Detached bool
}

// NewFakeRunner creates a fake repository with the given branches, checked out on current
func NewFakeRunner(current string, branches ...string) *FakeRunner {
	return &FakeRunner{
		Branches: branches,
		Current:  current,
		FailOn:   map[string]error{},
	}
}

var _ git.Runner = (*FakeRunner)(nil)

// FailWith makes call fail with a GitCommandError
func (f *FakeRunner) FailWith(call string) *FakeRunner {
	f.FailOn[call] = gferrors.NewGitCommandError("git", strings.Fields(call), "", "simulated failure", fmt.Errorf("exit status 1"))
	return f
}

// ResetCalls forgets recorded calls
func (f *FakeRunner) ResetCalls() {
	f.Calls = nil
}

func (f *FakeRunner) record(call string) error {
	f.Calls = append(f.Calls, call)
	if err, ok := f.FailOn[call]; ok {
		return err
	}
	return nil
}

func (f *FakeRunner) GetRepoRoot() (string, error) {
	return "/fake", nil
}

func (f *FakeRunner) GetAllBranchNames() ([]string, error) {
	return slices.Clone(f.Branches), nil
}

func (f *FakeRunner) GetCurrentBranch() (string, error) {
	if f.Detached {
		return "", gferrors.ErrNotOnBranch
	}
	return f.Current, nil
}

func (f *FakeRunner) TagExists(name string) (bool, error) {
	return slices.Contains(f.Tags, name), nil
}

func (f *FakeRunner) CheckoutBranch(_ context.Context, branchName string) error {
	if err := f.record("checkout " + branchName); err != nil {
		return err
	}
	if !slices.Contains(f.Branches, branchName) {
		return gferrors.NewGitCommandError("git", []string{"checkout", branchName}, "", "pathspec did not match", fmt.Errorf("exit status 1"))
	}
	f.Current = branchName
	return nil
}

func (f *FakeRunner) CreateAndCheckoutBranch(_ context.Context, branchName string) error {
	if err := f.record("checkout -b " + branchName); err != nil {
		return err
	}
	f.Branches = append(f.Branches, branchName)
	f.Current = branchName
	return nil
}

func (f *FakeRunner) DeleteBranch(_ context.Context, branchName string) error {
	if err := f.record("branch -d " + branchName); err != nil {
		return err
	}
	f.Branches = slices.DeleteFunc(f.Branches, func(b string) bool { return b == branchName })
	return nil
}

func (f *FakeRunner) DeleteRemoteBranch(_ context.Context, remote, branchName string) error {
	return f.record("push --delete " + remote + " " + branchName)
}

func (f *FakeRunner) PullBranch(_ context.Context, remote, branchName string) (git.PullResult, error) {
	if err := f.record("pull " + remote + " " + branchName); err != nil {
		return git.PullDone, err
	}
	return git.PullUnneeded, nil
}

func (f *FakeRunner) PushBranch(_ context.Context, remote, branchName string) error {
	return f.record("push " + remote + " " + branchName)
}

func (f *FakeRunner) PushTag(_ context.Context, remote, tagName string) error {
	return f.record("push " + remote + " tag " + tagName)
}

func (f *FakeRunner) MergeNoFF(_ context.Context, sourceBranch string) error {
	return f.record("merge --no-ff " + sourceBranch)
}

func (f *FakeRunner) StageAll(_ context.Context) error {
	return f.record("add -A")
}

func (f *FakeRunner) Commit(_ context.Context, message string) error {
	return f.record("commit -m " + message)
}

func (f *FakeRunner) CreateTag(_ context.Context, tagName, _ string) error {
	if err := f.record("tag " + tagName); err != nil {
		return err
	}
	f.Tags = append(f.Tags, tagName)
	return nil
}
