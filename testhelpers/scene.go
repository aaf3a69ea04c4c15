package testhelpers

import (
	"path/filepath"
	"testing"
)

// Scene is a temporary repository on master with one commit, wired to a bare
// remote named origin that already has master.
type Scene struct {
	Dir    string
	Remote string
	Repo   *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a scene under t.TempDir. It never changes the process
// working directory, so scenes are safe in parallel tests.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "repo")
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	if err := repo.CreateChangeAndCommit("initial", "init"); err != nil {
		t.Fatalf("Failed to create initial commit: %v", err)
	}

	remote, err := repo.CreateBareRemote("origin")
	if err != nil {
		t.Fatalf("Failed to create remote: %v", err)
	}
	if err := repo.PushBranch("origin", "master"); err != nil {
		t.Fatalf("Failed to push master: %v", err)
	}

	scene := &Scene{Dir: dir, Remote: remote, Repo: repo}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// WithDevelop is a setup that creates develop from master and pushes it
func WithDevelop(s *Scene) error {
	if err := s.Repo.CreateBranch("develop"); err != nil {
		return err
	}
	return s.Repo.PushBranch("origin", "develop")
}
