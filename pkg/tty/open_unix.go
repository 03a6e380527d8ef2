//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package tty

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// candidates returns the probe order for Unix: stderr first, since scripts
// commonly redirect stdout and stdin while leaving stderr on the terminal,
// then stdin, stdout, and finally /dev/tty opened directly.
func candidates() []probe {
	return []probe{
		{SourceStderr, func() (*Handle, error) { return fromStream(os.Stderr, SourceStderr), nil }},
		{SourceStdin, func() (*Handle, error) { return fromStream(os.Stdin, SourceStdin), nil }},
		{SourceStdout, func() (*Handle, error) { return fromStream(os.Stdout, SourceStdout), nil }},
		{SourceDevTTY, openDevTTY},
	}
}

func fromStream(f *os.File, source Source) *Handle {
	if !isTerminal(f.Fd()) {
		return nil
	}
	// A standard stream attached to the terminal is open read/write on the
	// same device, so it serves as both sides.
	return &Handle{in: f, out: f, source: source}
}

func openDevTTY() (*Handle, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	if !isTerminal(f.Fd()) {
		f.Close()
		return nil, nil
	}
	return &Handle{in: f, out: f, source: SourceDevTTY, owned: true}, nil
}

// isTerminal checks with both isatty and x/term. Some sneaky environments
// fool one or the other; we only accept a candidate both agree on.
func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) && term.IsTerminal(int(fd))
}
