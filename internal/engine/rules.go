package engine

import (
	"fmt"
	"strings"

	"gitflow.dev/gitflow/internal/config"
	gferrors "gitflow.dev/gitflow/internal/errors"
)

// Rules holds the validation predicates shared by every workflow operation.
// Each predicate fails with its own taxonomy error.
type Rules struct {
	Names config.Workflow
}

// Classify returns the workflow kind of a branch name
func (r Rules) Classify(name string) BranchKind {
	switch {
	case name == r.Names.Master:
		return KindMaster
	case name == r.Names.Develop:
		return KindDevelop
	case strings.HasPrefix(name, r.Names.ReleasePrefix):
		return KindRelease
	case strings.HasPrefix(name, r.Names.HotfixPrefix):
		return KindHotfix
	default:
		return KindFeature
	}
}

// TagName returns the tag created when source is merged into master, and
// whether source qualifies for a tag at all.
func (r Rules) TagName(source string) (string, bool) {
	switch r.Classify(source) {
	case KindRelease:
		return strings.TrimPrefix(source, r.Names.ReleasePrefix), true
	case KindHotfix:
		return strings.TrimPrefix(source, r.Names.HotfixPrefix), true
	default:
		return "", false
	}
}

// RequireMasterExists fails with ErrMissingMaster if master is absent
func (r Rules) RequireMasterExists(state RepoState) error {
	if !state.Has(r.Names.Master) {
		return gferrors.NewWorkflowError(gferrors.KindMissingMaster, r.Names.Master,
			fmt.Sprintf("%s branch does not exist, please initialize your repository then rerun gitflow init", r.Names.Master))
	}
	return nil
}

// RequireDevelopExists fails with ErrMissingDevelop if develop is absent
func (r Rules) RequireDevelopExists(state RepoState) error {
	if !state.Has(r.Names.Develop) {
		return gferrors.NewWorkflowError(gferrors.KindMissingDevelop, r.Names.Develop,
			fmt.Sprintf("%s branch does not exist, please run gitflow init, or refactor your repository", r.Names.Develop))
	}
	return nil
}

// RequireBranchTypeAllowed parses a branch type, case-insensitively
func (r Rules) RequireBranchTypeAllowed(branchType string) (BranchType, error) {
	t := BranchType(strings.ToLower(strings.TrimSpace(branchType)))
	for _, allowed := range BranchTypes {
		if t == allowed {
			return t, nil
		}
	}
	return "", gferrors.NewWorkflowError(gferrors.KindInvalidBranchType, "",
		fmt.Sprintf("branch type %q not allowed, expected one of feature, release, hotfix", branchType))
}

// RequireNameUnique fails with ErrNameAlreadyExists if name is taken
func (r Rules) RequireNameUnique(state RepoState, name string) error {
	if state.Has(name) {
		msg := fmt.Sprintf("a branch named %s already exists", name)
		if state.Current != "" {
			msg += fmt.Sprintf(", remaining on branch %s", state.Current)
		}
		return gferrors.NewWorkflowError(gferrors.KindNameAlreadyExists, name, msg)
	}
	return nil
}

// RequireNameMatchesType fails with ErrNameTypeMismatch if name breaks the
// naming rule of its type
func (r Rules) RequireNameMatchesType(branchType BranchType, name string) error {
	switch branchType {
	case BranchTypeFeature:
		if r.Classify(name) != KindFeature {
			return gferrors.NewWorkflowError(gferrors.KindNameTypeMismatch, name,
				fmt.Sprintf("feature branches cannot be named %s, %s, or begin with %s, or %s",
					r.Names.Master, r.Names.Develop, r.Names.ReleasePrefix, r.Names.HotfixPrefix))
		}
	case BranchTypeRelease:
		if !strings.HasPrefix(name, r.Names.ReleasePrefix) || name == r.Names.ReleasePrefix {
			return gferrors.NewWorkflowError(gferrors.KindNameTypeMismatch, name,
				fmt.Sprintf("release branch names must begin with %s followed by a version", r.Names.ReleasePrefix))
		}
	case BranchTypeHotfix:
		if !strings.HasPrefix(name, r.Names.HotfixPrefix) || name == r.Names.HotfixPrefix {
			return gferrors.NewWorkflowError(gferrors.KindNameTypeMismatch, name,
				fmt.Sprintf("hotfix branch names must begin with %s followed by a version", r.Names.HotfixPrefix))
		}
	default:
		_, err := r.RequireBranchTypeAllowed(string(branchType))
		return err
	}
	return nil
}

// RequireNotLongLived fails with ErrDirectCommitForbidden on master or develop
func (r Rules) RequireNotLongLived(current string) error {
	switch r.Classify(current) {
	case KindDevelop:
		return gferrors.NewWorkflowError(gferrors.KindDirectCommitForbidden, current,
			fmt.Sprintf("committing directly to %s is not allowed, please create a feature branch", current))
	case KindMaster:
		return gferrors.NewWorkflowError(gferrors.KindDirectCommitForbidden, current,
			fmt.Sprintf("committing directly to %s is not allowed, please create a release or hotfix branch", current))
	}
	return nil
}

// BranchPoint returns the branch a new branch of the given type forks from
func (r Rules) BranchPoint(branchType BranchType) string {
	if branchType == BranchTypeHotfix {
		return r.Names.Master
	}
	return r.Names.Develop
}
