// Package runtime provides the execution context for gitflow commands.
//
// It encapsulates shared dependencies needed by actions, such as the engine
// instance, logger, and repository root path.
package runtime
