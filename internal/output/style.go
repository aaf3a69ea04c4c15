package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConfigureColor disables styling when output is not a terminal
func ConfigureColor(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Emphasize highlights a branch, tag or remote name inside narration
func Emphasize(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(text)
}
