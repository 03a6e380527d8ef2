// Package tty resolves a handle to the process's controlling terminal and
// queries and mutates its input mode.
//
// Resolution is independent of stream redirection: on Unix the standard
// streams are probed in a fixed order (stderr, stdin, stdout) before falling
// back to /dev/tty, so a prompt still reaches the user when stdout is piped
// to a file. On Windows the console is opened through its CONIN$/CONOUT$
// device names.
package tty

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNoTerminal is returned by Open when no candidate stream is an
	// interactive terminal.
	ErrNoTerminal = errors.New("no terminal available")

	// ErrModeUnavailable wraps failures to query or set the terminal mode.
	// The handle itself stays open and usable for raw byte access.
	ErrModeUnavailable = errors.New("terminal mode unavailable")
)

// Source identifies which candidate stream a handle was resolved from.
type Source int

const (
	SourceNone Source = iota
	SourceStderr
	SourceStdin
	SourceStdout
	SourceDevTTY
	SourceConsole
)

func (s Source) String() string {
	switch s {
	case SourceStderr:
		return "stderr"
	case SourceStdin:
		return "stdin"
	case SourceStdout:
		return "stdout"
	case SourceDevTTY:
		return "/dev/tty"
	case SourceConsole:
		return "console"
	default:
		return "none"
	}
}

// Handle is an open bidirectional connection to the controlling terminal.
// The input and output sides may be the same underlying file (a standard
// stream or /dev/tty) or distinct ones (the Windows console buffers).
type Handle struct {
	in     *os.File
	out    *os.File
	source Source

	// owned is set when the files were opened by this package and must be
	// closed by Close. Borrowed standard streams are left alone.
	owned bool
}

// Open resolves the controlling terminal, probing the platform's candidate
// streams in priority order. The candidate set is evaluated fresh on every
// call; nothing is cached across calls.
func Open() (*Handle, error) {
	return resolve(candidates())
}

// probe is one candidate strategy for finding the terminal. open returns
// (nil, nil) when the candidate is simply not a terminal, and an error only
// for a reportable failure such as /dev/tty refusing to open.
type probe struct {
	source Source
	open   func() (*Handle, error)
}

func resolve(candidates []probe) (*Handle, error) {
	var lastErr error
	for _, c := range candidates {
		h, err := c.open()
		if err != nil {
			lastErr = err
			continue
		}
		if h != nil {
			return h, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTerminal, lastErr)
	}
	return nil, ErrNoTerminal
}

// Read reads bytes from the terminal's input side.
func (h *Handle) Read(p []byte) (int, error) {
	return h.in.Read(p)
}

// Write writes bytes to the terminal's output side. The output side is the
// terminal device itself, not the process's (possibly redirected) stdout.
func (h *Handle) Write(p []byte) (int, error) {
	return h.out.Write(p)
}

// Source reports which candidate stream the handle was resolved from.
func (h *Handle) Source() Source {
	return h.source
}

// Close closes the handle. Handles resolved from borrowed standard streams
// are not closed; handles this package opened itself (/dev/tty, the Windows
// console buffers) are.
func (h *Handle) Close() error {
	if !h.owned {
		return nil
	}
	err := h.in.Close()
	if h.out != h.in {
		if cerr := h.out.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
