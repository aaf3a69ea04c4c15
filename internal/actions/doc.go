// Package actions provides the high-level gitflow operations behind each CLI
// command.
//
// Each action accepts a runtime.Context which provides the Engine, Splog and
// repository root. Actions own continuation state; the engine itself never
// touches the filesystem.
package actions
