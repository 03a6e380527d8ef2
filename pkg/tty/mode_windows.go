//go:build windows

package tty

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Mode is a snapshot of the console's input mode flags.
type Mode struct {
	input uint32
}

// EchoEnabled reports whether typed input is echoed back to the screen.
func (m Mode) EchoEnabled() bool {
	return m.input&windows.ENABLE_ECHO_INPUT != 0
}

// DisableEcho clears the echo flag while keeping line input enabled, so the
// console still delivers a full line when the user presses enter.
func (m *Mode) DisableEcho() {
	m.input &^= windows.ENABLE_ECHO_INPUT
	m.input |= windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT
}

// EnableEcho sets the echo flag.
func (m *Mode) EnableEcho() {
	m.input |= windows.ENABLE_ECHO_INPUT
}

// EnableLineInput enables line-at-a-time input delivery.
func (m *Mode) EnableLineInput() {
	m.input |= windows.ENABLE_LINE_INPUT
}

// GetMode queries the console input buffer's current mode. It is never
// cached: the console can be reconfigured between calls by other actors.
func (h *Handle) GetMode() (Mode, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(h.in.Fd()), &mode); err != nil {
		return Mode{}, fmt.Errorf("%w: %v", ErrModeUnavailable, err)
	}
	return Mode{input: mode}, nil
}

// SetMode applies a previously captured or adjusted mode.
func (h *Handle) SetMode(mode Mode) error {
	if err := windows.SetConsoleMode(windows.Handle(h.in.Fd()), mode.input); err != nil {
		return fmt.Errorf("%w: %v", ErrModeUnavailable, err)
	}
	return nil
}
