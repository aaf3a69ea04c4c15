// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch management (create, delete, checkout)
//   - History operations (stage, commit, merge, tag)
//   - Remote operations (push, pull, remote branch deletion)
//   - Repo state queries through go-git (branches, HEAD, tags)
//
// This package should be the only place where direct git commands are executed.
package git
