package console

import (
	"os"

	"github.com/moby/term"
)

// IsTerminal returns true if the given file descriptor is attached to a
// terminal and a user is interacting with us.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(fd)
}

// Width returns the width of the terminal, measured on stderr since stdout
// might be piped.
//
// Returns 0 if we're not in a terminal.
func Width() uint16 {
	fd := os.Stderr.Fd()
	if !term.IsTerminal(fd) {
		return 0
	}
	ws, err := term.GetWinsize(fd)
	if err != nil {
		return 0
	}
	return ws.Width
}
