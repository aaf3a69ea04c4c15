// Package testhelpers provides shared test utilities: an in-memory git runner,
// throwaway repositories with a bare remote, and the gitflow binary for CLI tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// GetSharedBinaryPath returns the gitflow binary, building it on first use
// when TestMain did not already do so.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		if sharedBinaryPath == "" {
			sharedBinaryPath, binaryErr = buildBinary()
		}
	})
	return sharedBinaryPath
}

// GetBinaryError returns any error that occurred during binary building.
func GetBinaryError() error {
	return binaryErr
}

// buildBinary compiles ./cmd/gitflow into a fresh temp directory
func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "gitflow-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "gitflow")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gitflow")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, nil
}

// findModuleRoot walks up from startDir to the directory holding go.mod
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// TestMain builds the gitflow binary once before the package's tests run and
// removes it afterwards.
func TestMain(m *testing.M, cleanup func()) {
	binaryPath := GetSharedBinaryPath()
	if binaryErr != nil {
		fmt.Fprintf(os.Stderr, "Failed to build gitflow binary: %v\n", binaryErr)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(filepath.Dir(binaryPath))
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}
