//go:build windows

package tty

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// candidates returns the probe order for Windows. Console redirection works
// differently from Unix: individual standard handles are not reopenable as
// the console, so the console input and output buffers are opened directly
// through their well-known device names.
func candidates() []probe {
	return []probe{
		{SourceConsole, openConsole},
	}
}

func openConsole() (*Handle, error) {
	in, err := openConsoleFile("CONIN$")
	if err != nil {
		return nil, err
	}
	if !isConsole(in.Fd()) {
		in.Close()
		return nil, nil
	}
	out, err := openConsoleFile("CONOUT$")
	if err != nil {
		in.Close()
		return nil, err
	}
	return &Handle{in: in, out: out, source: SourceConsole, owned: true}, nil
}

func openConsoleFile(name string) (*os.File, error) {
	fd, err := syscall.Open(name, syscall.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return os.NewFile(uintptr(fd), name), nil
}

// isConsole reports whether the handle is a character device the console
// API recognizes; redirected handles make GetConsoleMode fail.
func isConsole(fd uintptr) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}
