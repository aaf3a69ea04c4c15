package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether both stdin and stdout are attached to a terminal
func IsTTY() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// IsStdoutTTY reports whether stdout is a terminal
func IsStdoutTTY() bool {
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether prompting the user is allowed.
// GITFLOW_NON_INTERACTIVE forces non-interactive mode.
func IsInteractive() bool {
	if os.Getenv("GITFLOW_NON_INTERACTIVE") != "" {
		return false
	}
	return IsTTY()
}
