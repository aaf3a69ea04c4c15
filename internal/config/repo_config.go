package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the workflow config file, looked up at the repository root
const FileName = ".gitflow.yml"

// Default workflow names
const (
	DefaultRemote        = "origin"
	DefaultMaster        = "master"
	DefaultDevelop       = "develop"
	DefaultReleasePrefix = "release-"
	DefaultHotfixPrefix  = "hotfix-"
)

// Workflow holds the long-lived branch names, short-lived branch prefixes and
// the remote every operation pushes to.
type Workflow struct {
	Remote        string `yaml:"remote,omitempty"`
	Master        string `yaml:"master,omitempty"`
	Develop       string `yaml:"develop,omitempty"`
	ReleasePrefix string `yaml:"releasePrefix,omitempty"`
	HotfixPrefix  string `yaml:"hotfixPrefix,omitempty"`
}

// DefaultWorkflow returns the classic master/develop workflow on origin
func DefaultWorkflow() Workflow {
	return Workflow{
		Remote:        DefaultRemote,
		Master:        DefaultMaster,
		Develop:       DefaultDevelop,
		ReleasePrefix: DefaultReleasePrefix,
		HotfixPrefix:  DefaultHotfixPrefix,
	}
}

// withDefaults fills unset fields
func (w Workflow) withDefaults() Workflow {
	d := DefaultWorkflow()
	if w.Remote == "" {
		w.Remote = d.Remote
	}
	if w.Master == "" {
		w.Master = d.Master
	}
	if w.Develop == "" {
		w.Develop = d.Develop
	}
	if w.ReleasePrefix == "" {
		w.ReleasePrefix = d.ReleasePrefix
	}
	if w.HotfixPrefix == "" {
		w.HotfixPrefix = d.HotfixPrefix
	}
	return w
}

// Validate checks that the names cannot be confused with each other
func (w Workflow) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"remote", w.Remote},
		{"master", w.Master},
		{"develop", w.Develop},
		{"releasePrefix", w.ReleasePrefix},
		{"hotfixPrefix", w.HotfixPrefix},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s must not be empty", f.name)
		}
		if strings.ContainsAny(f.value, " \t\n") {
			return fmt.Errorf("%s %q must not contain whitespace", f.name, f.value)
		}
	}
	if w.Master == w.Develop {
		return fmt.Errorf("master and develop must be different branches, both are %q", w.Master)
	}
	if strings.HasPrefix(w.ReleasePrefix, w.HotfixPrefix) || strings.HasPrefix(w.HotfixPrefix, w.ReleasePrefix) {
		return fmt.Errorf("release prefix %q and hotfix prefix %q overlap", w.ReleasePrefix, w.HotfixPrefix)
	}
	for _, long := range []string{w.Master, w.Develop} {
		if strings.HasPrefix(long, w.ReleasePrefix) || strings.HasPrefix(long, w.HotfixPrefix) {
			return fmt.Errorf("branch %q must not start with a release or hotfix prefix", long)
		}
	}
	return nil
}

// LoadWorkflow reads the workflow config from the repository root.
// A missing file yields the defaults.
func LoadWorkflow(repoRoot string) (Workflow, error) {
	configPath := filepath.Join(repoRoot, FileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultWorkflow(), nil
		}
		return Workflow{}, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var w Workflow
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Workflow{}, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	w = w.withDefaults()
	if err := w.Validate(); err != nil {
		return Workflow{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return w, nil
}

// Marshal renders the workflow as YAML, as it would appear in the config file
func (w Workflow) Marshal() (string, error) {
	data, err := yaml.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("failed to marshal workflow config: %w", err)
	}
	return string(data), nil
}
