package engine

import (
	"slices"
)

// BranchType is a workflow branch type that can be created with CreateBranch
type BranchType string

const (
	BranchTypeFeature BranchType = "feature"
	BranchTypeRelease BranchType = "release"
	BranchTypeHotfix  BranchType = "hotfix"
)

// BranchTypes lists the creatable branch types in prompt order
var BranchTypes = []BranchType{BranchTypeFeature, BranchTypeRelease, BranchTypeHotfix}

// BranchKind classifies an existing branch by its name
type BranchKind int

const (
	KindFeature BranchKind = iota
	KindMaster
	KindDevelop
	KindRelease
	KindHotfix
)

func (k BranchKind) String() string {
	switch k {
	case KindMaster:
		return "master"
	case KindDevelop:
		return "develop"
	case KindRelease:
		return "release"
	case KindHotfix:
		return "hotfix"
	default:
		return "feature"
	}
}

// RepoState is a snapshot of the branch set and the checked out branch.
// It is read fresh at the start of every operation and never cached.
type RepoState struct {
	Branches []string
	Current  string
}

// Has reports whether a local branch with the given name exists
func (s RepoState) Has(name string) bool {
	return slices.Contains(s.Branches, name)
}

// Narrator receives progress messages as the engine drives git.
// output.Splog implements it.
type Narrator interface {
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

type nopNarrator struct{}

func (nopNarrator) Info(string, ...interface{})  {}
func (nopNarrator) Debug(string, ...interface{}) {}
