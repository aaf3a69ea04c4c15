package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const continuationFile = ".gitflow_continue"

// ContinuationStep is the on-disk form of one merge plan step
type ContinuationStep struct {
	Kind   string `json:"kind"`
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
}

// ContinuationState represents a merge that was interrupted by a failing git call
type ContinuationState struct {
	RunID     string             `json:"runId"`
	Operation string             `json:"operation"`
	Source    string             `json:"source"`
	Steps     []ContinuationStep `json:"steps"`
	Completed int                `json:"completed"`
	StartedAt time.Time          `json:"startedAt"`
}

// continuationPath places the state inside the git directory, which is
// per-worktree for linked worktrees
func continuationPath(gitDir string) string {
	return filepath.Join(gitDir, continuationFile)
}

// HasContinuationState reports whether an interrupted operation is waiting
func HasContinuationState(gitDir string) bool {
	_, err := os.Stat(continuationPath(gitDir))
	return err == nil
}

// GetContinuationState reads the continuation state from disk.
// It returns (nil, nil) when no state exists.
func GetContinuationState(gitDir string) (*ContinuationState, error) {
	data, err := os.ReadFile(continuationPath(gitDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read continuation state: %w", err)
	}

	var state ContinuationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse continuation state: %w", err)
	}
	return &state, nil
}

// PersistContinuationState writes the continuation state to disk
func PersistContinuationState(gitDir string, state *ContinuationState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal continuation state: %w", err)
	}
	return os.WriteFile(continuationPath(gitDir), data, 0600)
}

// ClearContinuationState removes the continuation state file
func ClearContinuationState(gitDir string) error {
	err := os.Remove(continuationPath(gitDir))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear continuation state: %w", err)
	}
	return nil
}
