// Package errors provides the workflow error taxonomy and custom error types for gitflow.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies which workflow rule or collaborator call failed.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors outside the taxonomy
	KindUnknown Kind = iota
	KindMissingMaster
	KindMissingDevelop
	KindInvalidBranchType
	KindNameAlreadyExists
	KindNameTypeMismatch
	KindDirectCommitForbidden
	KindCollaboratorFailure
	KindOperationInProgress
	KindNoOperationInProgress
)

var kindNames = map[Kind]string{
	KindUnknown:               "Unknown",
	KindMissingMaster:         "MissingMaster",
	KindMissingDevelop:        "MissingDevelop",
	KindInvalidBranchType:     "InvalidBranchType",
	KindNameAlreadyExists:     "NameAlreadyExists",
	KindNameTypeMismatch:      "NameTypeMismatch",
	KindDirectCommitForbidden: "DirectCommitForbidden",
	KindCollaboratorFailure:   "CollaboratorFailure",
	KindOperationInProgress:   "OperationInProgress",
	KindNoOperationInProgress: "NoOperationInProgress",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors, one per taxonomy entry
var (
	// ErrMissingMaster indicates the master branch does not exist
	ErrMissingMaster = errors.New("master branch does not exist")

	// ErrMissingDevelop indicates the develop branch does not exist
	ErrMissingDevelop = errors.New("develop branch does not exist")

	// ErrInvalidBranchType indicates a branch type outside feature, release and hotfix
	ErrInvalidBranchType = errors.New("branch type not allowed")

	// ErrNameAlreadyExists indicates the requested branch name is taken
	ErrNameAlreadyExists = errors.New("branch name already exists")

	// ErrNameTypeMismatch indicates a branch name that breaks its type's naming rule
	ErrNameTypeMismatch = errors.New("branch name does not match branch type")

	// ErrDirectCommitForbidden indicates a commit attempted on master or develop
	ErrDirectCommitForbidden = errors.New("direct commit forbidden")

	// ErrCollaboratorFailure indicates a failed git call
	ErrCollaboratorFailure = errors.New("git command failed")

	// ErrOperationInProgress indicates an interrupted merge is waiting to be continued
	ErrOperationInProgress = errors.New("a gitflow operation is already in progress")

	// ErrNoOperationInProgress indicates there is nothing to continue
	ErrNoOperationInProgress = errors.New("no gitflow operation in progress")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")
)

var sentinels = map[Kind]error{
	KindMissingMaster:         ErrMissingMaster,
	KindMissingDevelop:        ErrMissingDevelop,
	KindInvalidBranchType:     ErrInvalidBranchType,
	KindNameAlreadyExists:     ErrNameAlreadyExists,
	KindNameTypeMismatch:      ErrNameTypeMismatch,
	KindDirectCommitForbidden: ErrDirectCommitForbidden,
	KindCollaboratorFailure:   ErrCollaboratorFailure,
	KindOperationInProgress:   ErrOperationInProgress,
	KindNoOperationInProgress: ErrNoOperationInProgress,
}

// WorkflowError represents a violated workflow rule
type WorkflowError struct {
	Kind    Kind
	Branch  string
	Message string
}

func (e *WorkflowError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Branch != "" {
		return fmt.Sprintf("%s: %s", sentinels[e.Kind], e.Branch)
	}
	if s, ok := sentinels[e.Kind]; ok {
		return s.Error()
	}
	return e.Kind.String()
}

// Is returns true if the target is the sentinel for this error's kind
func (e *WorkflowError) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && target == s
}

// NewWorkflowError creates a new WorkflowError
func NewWorkflowError(kind Kind, branch, message string) *WorkflowError {
	return &WorkflowError{
		Kind:    kind,
		Branch:  branch,
		Message: message,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCollaboratorFailure
func (e *GitCommandError) Is(target error) bool {
	return target == ErrCollaboratorFailure
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// KindOf returns the taxonomy entry for err, looking through wrapped errors.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr.Kind
	}
	for kind, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}
