package actions_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/actions"
	"gitflow.dev/gitflow/internal/config"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/output"
	"gitflow.dev/gitflow/internal/runtime"
	"gitflow.dev/gitflow/testhelpers"
)

type harness struct {
	ctx    *runtime.Context
	runner *testhelpers.FakeRunner
	out    *bytes.Buffer
	gitDir string
}

func newHarness(t *testing.T, runner *testhelpers.FakeRunner) *harness {
	t.Helper()
	root := t.TempDir()
	gitDir := filepath.Join(root, ".git")
	require.NoError(t, os.Mkdir(gitDir, 0750))

	var buf bytes.Buffer
	splog, err := output.NewSplogWithOptions(output.Options{Writer: &buf, RunID: "run-1"})
	require.NoError(t, err)

	ctx, err := runtime.NewContext(context.Background(), runner, splog, root, gitDir)
	require.NoError(t, err)

	return &harness{ctx: ctx, runner: runner, out: &buf, gitDir: gitDir}
}

func TestMergeAction(t *testing.T) {
	t.Parallel()

	t.Run("clears continuation state on success", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, testhelpers.NewFakeRunner("foo", "master", "develop", "foo"))

		require.NoError(t, actions.MergeAction(h.ctx))
		require.False(t, config.HasContinuationState(h.gitDir))
		require.Contains(t, h.out.String(), "merge successful...")
	})

	t.Run("long-lived branches are a silent no-op", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, testhelpers.NewFakeRunner("develop", "master", "develop"))

		require.NoError(t, actions.MergeAction(h.ctx))
		require.Empty(t, h.runner.Calls)
		require.Empty(t, h.out.String())
		require.False(t, config.HasContinuationState(h.gitDir))
	})

	t.Run("failure leaves resumable state", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("release-1.0", "master", "develop", "release-1.0").
			FailWith("push origin develop")
		h := newHarness(t, runner)

		err := actions.MergeAction(h.ctx)
		require.ErrorIs(t, err, gferrors.ErrCollaboratorFailure)

		state, err := config.GetContinuationState(h.gitDir)
		require.NoError(t, err)
		require.NotNil(t, state)
		require.Equal(t, "merge", state.Operation)
		require.Equal(t, "release-1.0", state.Source)
		require.Equal(t, "run-1", state.RunID)
		require.Equal(t, 2, state.Completed)
		require.Len(t, state.Steps, 5)
		require.False(t, state.StartedAt.IsZero())
		require.Contains(t, h.out.String(), "gitflow continue")

		// A second merge is refused while the first is pending
		err = actions.MergeAction(h.ctx)
		require.ErrorIs(t, err, gferrors.ErrOperationInProgress)

		delete(runner.FailOn, "push origin develop")
		runner.ResetCalls()

		require.NoError(t, actions.ContinueAction(h.ctx, actions.ContinueOptions{}))
		require.False(t, config.HasContinuationState(h.gitDir))
		require.Equal(t, []string{
			"checkout develop",
			"pull origin develop",
			"merge --no-ff release-1.0",
			"push origin develop",
			"branch -d release-1.0",
			"push --delete origin release-1.0",
		}, runner.Calls)
	})

	t.Run("validation errors leave no state behind", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, testhelpers.NewFakeRunner("foo", "master", "foo"))

		err := actions.MergeAction(h.ctx)
		require.ErrorIs(t, err, gferrors.ErrMissingDevelop)
		require.False(t, config.HasContinuationState(h.gitDir))
	})
}

func TestContinueAction(t *testing.T) {
	t.Parallel()

	t.Run("nothing to continue", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, testhelpers.NewFakeRunner("develop", "master", "develop"))

		err := actions.ContinueAction(h.ctx, actions.ContinueOptions{})
		require.ErrorIs(t, err, gferrors.ErrNoOperationInProgress)
		require.Equal(t, gferrors.KindNoOperationInProgress, gferrors.KindOf(err))
	})

	t.Run("abort discards state without running steps", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("foo", "master", "develop", "foo").FailWith("checkout develop")
		h := newHarness(t, runner)

		require.Error(t, actions.MergeAction(h.ctx))
		require.True(t, config.HasContinuationState(h.gitDir))
		runner.ResetCalls()

		require.NoError(t, actions.ContinueAction(h.ctx, actions.ContinueOptions{Abort: true}))
		require.False(t, config.HasContinuationState(h.gitDir))
		require.Empty(t, runner.Calls)
	})

	t.Run("keeps state when the retry fails again", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("foo", "master", "develop", "foo").FailWith("push --delete origin foo")
		h := newHarness(t, runner)

		require.Error(t, actions.MergeAction(h.ctx))
		require.Error(t, actions.ContinueAction(h.ctx, actions.ContinueOptions{}))

		state, err := config.GetContinuationState(h.gitDir)
		require.NoError(t, err)
		require.Equal(t, 1, state.Completed)
	})
}

func TestCreateAndCommitActions(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, testhelpers.NewFakeRunner("master", "master", "develop"))

		require.NoError(t, actions.CreateAction(h.ctx, actions.CreateOptions{BranchType: "release", BranchName: "release-3.0"}))
		require.Equal(t, "release-3.0", h.runner.Current)
	})

	t.Run("commit rejects an empty message", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, testhelpers.NewFakeRunner("foo", "master", "develop", "foo"))

		require.Error(t, actions.CommitAction(h.ctx, actions.CommitOptions{Message: "  "}))
		require.Empty(t, h.runner.Calls)
	})

	t.Run("init", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t, testhelpers.NewFakeRunner("master", "master"))

		require.NoError(t, actions.InitAction(h.ctx))
		require.Equal(t, "develop", h.runner.Current)
	})
}

func TestConfigActionUsesRepoConfig(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte("master: main\nremote: upstream\n"), 0600))

	var buf bytes.Buffer
	splog, err := output.NewSplogWithOptions(output.Options{Writer: &buf})
	require.NoError(t, err)

	ctx, err := runtime.NewContext(context.Background(), testhelpers.NewFakeRunner("main", "main"), splog, root, filepath.Join(root, ".git"))
	require.NoError(t, err)

	require.NoError(t, actions.ConfigAction(ctx))
	require.Contains(t, buf.String(), "master: main")
	require.Contains(t, buf.String(), "remote: upstream")
	require.Contains(t, buf.String(), "develop: develop")
}
