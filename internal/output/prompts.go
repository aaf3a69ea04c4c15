package output

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// PromptBranchType asks which workflow branch type to create
func PromptBranchType(types []string) (string, error) {
	var branchType string
	prompt := &survey.Select{
		Message: "What kind of branch?",
		Options: types,
	}
	if err := survey.AskOne(prompt, &branchType); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return branchType, nil
}

// PromptBranchName asks for the new branch name. A non-empty prefix is
// suggested as the default and required by the validator.
func PromptBranchName(branchType, prefix string) (string, error) {
	var name string
	prompt := &survey.Input{
		Message: fmt.Sprintf("Name of the new %s branch", branchType),
		Default: prefix,
	}
	validate := func(ans interface{}) error {
		return ValidateBranchNameInput(fmt.Sprint(ans), prefix)
	}
	if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required), survey.WithValidator(validate)); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return strings.TrimSpace(name), nil
}

// ValidateBranchNameInput rejects names that could never be created: empty
// input, whitespace, or a bare prefix with nothing after it.
func ValidateBranchNameInput(name, prefix string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return fmt.Errorf("branch name is required")
	case strings.ContainsAny(name, " \t"):
		return fmt.Errorf("branch name %q must not contain whitespace", name)
	case prefix != "" && !strings.HasPrefix(name, prefix):
		return fmt.Errorf("branch name must start with %s", prefix)
	case prefix != "" && name == prefix:
		return fmt.Errorf("branch name needs a suffix after %s", prefix)
	}
	return nil
}
