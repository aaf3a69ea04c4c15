// Package engine implements the gitflow workflow state machine.
//
// It is the core of gitflow, responsible for:
//   - Validating repository state against the workflow rules
//   - Deciding where each branch type forks from and merges into
//   - Driving the repository collaborator through checkout, pull, merge,
//     push, tag and delete in a fixed order
//
// The engine keeps no state of its own. Every operation re-reads the branch
// list and current branch from the git.Runner it was built with.
package engine
