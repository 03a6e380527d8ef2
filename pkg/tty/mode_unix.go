//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package tty

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mode is a snapshot of the terminal's termios attributes.
type Mode struct {
	termios unix.Termios
}

// EchoEnabled reports whether typed input is echoed back to the screen.
func (m Mode) EchoEnabled() bool {
	return m.termios.Lflag&unix.ECHO != 0
}

// DisableEcho clears the echo flag while keeping canonical line delivery, so
// a full line is still delivered when the user presses enter. ICRNL is set
// so a typed carriage return arrives as a newline, matching what the
// terminal does when echo is on.
func (m *Mode) DisableEcho() {
	m.termios.Lflag &^= unix.ECHO
	m.termios.Lflag |= unix.ICANON | unix.ISIG
	m.termios.Iflag |= unix.ICRNL
}

// EnableEcho sets the echo flag.
func (m *Mode) EnableEcho() {
	m.termios.Lflag |= unix.ECHO
}

// EnableLineInput enables canonical mode, in which the terminal delivers
// input line by line with its usual editing keys.
func (m *Mode) EnableLineInput() {
	m.termios.Lflag |= unix.ICANON
}

// GetMode queries the terminal's current mode. It is never cached: the
// terminal can be reconfigured between calls by the user, another process
// or a job-control signal.
func (h *Handle) GetMode() (Mode, error) {
	termios, err := unix.IoctlGetTermios(int(h.in.Fd()), ioctlReadTermios)
	if err != nil {
		return Mode{}, fmt.Errorf("%w: %v", ErrModeUnavailable, err)
	}
	return Mode{termios: *termios}, nil
}

// SetMode applies a previously captured or adjusted mode.
func (h *Handle) SetMode(mode Mode) error {
	if err := unix.IoctlSetTermios(int(h.in.Fd()), ioctlWriteTermios, &mode.termios); err != nil {
		return fmt.Errorf("%w: %v", ErrModeUnavailable, err)
	}
	return nil
}
