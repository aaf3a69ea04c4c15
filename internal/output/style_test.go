package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestEmphasizePlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	require.Equal(t, "release-1.0", Emphasize("release-1.0"))
	require.Equal(t, "origin", Emphasize("origin"))
}

func TestConfigureColorDisablesStyling(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	ConfigureColor(false)
	require.Equal(t, "develop", Emphasize("develop"))
}

func TestValidateBranchNameInput(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateBranchNameInput("myfeature", ""))
	require.NoError(t, ValidateBranchNameInput("release-1.0", "release-"))

	require.Error(t, ValidateBranchNameInput("  ", ""))
	require.Error(t, ValidateBranchNameInput("my feature", ""))
	require.Error(t, ValidateBranchNameInput("1.0", "release-"))
	require.Error(t, ValidateBranchNameInput("hotfix-", "hotfix-"))
}

func TestIsInteractiveHonorsOverride(t *testing.T) {
	t.Setenv("GITFLOW_NON_INTERACTIVE", "1")
	require.False(t, IsInteractive())
}
