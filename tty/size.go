package tty

import (
	"os"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// IsTerminal checks if stdin and stdout are both terminals
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Width returns the current terminal width
func Width() uint {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	// Fallback to environment variables
	if cols := env.Int("COLS", 0); cols > 0 {
		return uint(cols)
	}
	if cols := env.Int("COLUMNS", 0); cols > 0 {
		return uint(cols)
	}
	return 79
}
