package console

import (
	"os"

	"golang.org/x/term"
)

// defaultWidth is used when output is not a terminal or the size query fails.
const defaultWidth = 80

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the current terminal width in columns, falling back
// to 80 for pipes and redirects.
func TerminalWidth() int {
	if !IsTerminal() {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
