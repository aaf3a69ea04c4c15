package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	gferrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/testhelpers"
)

func newEngine(t *testing.T, runner *testhelpers.FakeRunner) *engine.Engine {
	t.Helper()
	eng, err := engine.New(runner, engine.Options{})
	require.NoError(t, err)
	return eng
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a runner", func(t *testing.T) {
		t.Parallel()
		_, err := engine.New(nil, engine.Options{})
		require.Error(t, err)
	})

	t.Run("rejects an invalid workflow", func(t *testing.T) {
		t.Parallel()
		wf := config.DefaultWorkflow()
		wf.Develop = wf.Master
		_, err := engine.New(testhelpers.NewFakeRunner("master", "master"), engine.Options{Workflow: wf})
		require.Error(t, err)
	})

	t.Run("zero workflow means defaults", func(t *testing.T) {
		t.Parallel()
		eng := newEngine(t, testhelpers.NewFakeRunner("master", "master"))
		require.Equal(t, config.DefaultWorkflow(), eng.Workflow())
	})
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	t.Run("creates, checks out and pushes develop", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("master", "master")
		eng := newEngine(t, runner)

		require.NoError(t, eng.Initialize(context.Background()))
		require.Equal(t, []string{
			"checkout -b develop",
			"push origin develop",
		}, runner.Calls)
		require.Equal(t, "develop", runner.Current)
	})

	t.Run("is idempotent when develop exists", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("master", "master", "develop")
		eng := newEngine(t, runner)

		require.NoError(t, eng.Initialize(context.Background()))
		require.Equal(t, []string{"checkout develop"}, runner.Calls)
		require.Equal(t, "develop", runner.Current)
		require.Len(t, runner.Branches, 2)
	})

	t.Run("fails without master and does nothing", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("main", "main")
		eng := newEngine(t, runner)

		err := eng.Initialize(context.Background())
		require.ErrorIs(t, err, gferrors.ErrMissingMaster)
		require.Empty(t, runner.Calls)
	})
}

func TestCreateBranch(t *testing.T) {
	t.Parallel()

	t.Run("forks each type from its branch point", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			branchType string
			name       string
			from       string
		}{
			{"feature", "myfeature", "develop"},
			{"release", "release-1", "develop"},
			{"hotfix", "hotfix-1", "master"},
			{"Hotfix", "hotfix-2", "master"},
		}
		for _, tc := range cases {
			runner := testhelpers.NewFakeRunner("master", "master", "develop")
			eng := newEngine(t, runner)

			require.NoError(t, eng.CreateBranch(context.Background(), tc.branchType, tc.name))
			require.Equal(t, []string{"checkout " + tc.from, "checkout -b " + tc.name}, runner.Calls)
			require.Equal(t, tc.name, runner.Current)
		}
	})

	t.Run("rejects names that break the type rule without mutating", func(t *testing.T) {
		t.Parallel()
		cases := [][2]string{
			{"feature", "develop"},
			{"feature", "master"},
			{"feature", "release-x"},
			{"feature", "hotfix-x"},
			{"hotfix", "foo"},
			{"release", "foo"},
			{"release", "release-"},
			{"hotfix", "hotfix-"},
		}
		for _, tc := range cases {
			runner := testhelpers.NewFakeRunner("master", "master", "develop")
			eng := newEngine(t, runner)

			err := eng.CreateBranch(context.Background(), tc[0], tc[1])
			require.ErrorIs(t, err, gferrors.ErrNameTypeMismatch, "%s %s", tc[0], tc[1])
			require.Empty(t, runner.Calls)
		}
	})

	t.Run("rejects existing names", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("develop", "master", "develop", "myfeature")
		eng := newEngine(t, runner)

		err := eng.CreateBranch(context.Background(), "feature", "myfeature")
		require.ErrorIs(t, err, gferrors.ErrNameAlreadyExists)
		require.Empty(t, runner.Calls)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("develop", "master", "develop")
		eng := newEngine(t, runner)

		err := eng.CreateBranch(context.Background(), "bugfix", "x")
		require.ErrorIs(t, err, gferrors.ErrInvalidBranchType)
		require.Empty(t, runner.Calls)
	})

	t.Run("requires master and develop", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("master", "master")
		err := newEngine(t, runner).CreateBranch(context.Background(), "feature", "myfeature")
		require.ErrorIs(t, err, gferrors.ErrMissingDevelop)

		runner = testhelpers.NewFakeRunner("develop", "develop")
		err = newEngine(t, runner).CreateBranch(context.Background(), "feature", "myfeature")
		require.ErrorIs(t, err, gferrors.ErrMissingMaster)
		require.Empty(t, runner.Calls)
	})
}

func TestCommitCurrentBranch(t *testing.T) {
	t.Parallel()

	t.Run("commits and pushes a feature branch", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("foo", "master", "develop", "foo")
		eng := newEngine(t, runner)

		require.NoError(t, eng.CommitCurrentBranch(context.Background(), "add foo"))
		require.Equal(t, []string{
			"add -A",
			"commit -m add foo",
			"push origin foo",
		}, runner.Calls)
		require.Equal(t, "foo", runner.Current)
	})

	t.Run("merges a release branch into develop and returns to it", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("release-2.0", "master", "develop", "release-2.0")
		eng := newEngine(t, runner)

		require.NoError(t, eng.CommitCurrentBranch(context.Background(), "fix"))
		require.Equal(t, []string{
			"add -A",
			"commit -m fix",
			"push origin release-2.0",
			"checkout develop",
			"pull origin develop",
			"merge --no-ff release-2.0",
			"push origin develop",
			"checkout release-2.0",
		}, runner.Calls)
		require.Equal(t, "release-2.0", runner.Current)
	})

	t.Run("forbids direct commits to master and develop", func(t *testing.T) {
		t.Parallel()
		for _, current := range []string{"master", "develop"} {
			runner := testhelpers.NewFakeRunner(current, "master", "develop")
			err := newEngine(t, runner).CommitCurrentBranch(context.Background(), "nope")
			require.ErrorIs(t, err, gferrors.ErrDirectCommitForbidden)
			require.Empty(t, runner.Calls)
		}
	})

	t.Run("requires develop", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("foo", "master", "foo")
		err := newEngine(t, runner).CommitCurrentBranch(context.Background(), "msg")
		require.ErrorIs(t, err, gferrors.ErrMissingDevelop)
		require.Empty(t, runner.Calls)
	})

	t.Run("propagates a failing push", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("foo", "master", "develop", "foo").FailWith("push origin foo")
		err := newEngine(t, runner).CommitCurrentBranch(context.Background(), "msg")
		require.ErrorIs(t, err, gferrors.ErrCollaboratorFailure)
		require.Equal(t, gferrors.KindCollaboratorFailure, gferrors.KindOf(err))
	})

	t.Run("fails on a detached HEAD", func(t *testing.T) {
		t.Parallel()
		runner := testhelpers.NewFakeRunner("", "master", "develop")
		runner.Detached = true
		err := newEngine(t, runner).CommitCurrentBranch(context.Background(), "msg")
		require.ErrorIs(t, err, gferrors.ErrNotOnBranch)
		require.Empty(t, runner.Calls)
	})
}
