// Package config manages gitflow configuration and state persistence.
//
// It handles:
//   - The repository workflow configuration (.gitflow.yml)
//   - Continuation state for merges interrupted by a failing git call
package config
