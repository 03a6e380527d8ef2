// Package prompt reads lines of input from the controlling terminal,
// optionally with echo suppressed for secrets.
//
//	term, err := prompt.Open()
//	if err != nil {
//		return err
//	}
//	defer term.Close()
//	username, err := term.Prompt("Username: ")
//	password, err := term.PromptSensitive("Password: ")
//
// Prompts are written to the terminal device itself, so they stay visible
// when the process's standard streams are redirected.
package prompt

import (
	"io"

	"github.com/termfold/ttyprompt/pkg/lineio"
	"github.com/termfold/ttyprompt/pkg/tty"
)

// Device is the terminal surface the prompter needs: byte I/O plus mode
// control. *tty.Handle implements it; tests use in-memory devices.
type Device interface {
	io.Reader
	io.Writer
	io.Closer
	tty.ModeController
}

// Terminal prompts on a resolved terminal device. It owns the device for
// its lifetime and is not safe for concurrent use: mode-toggle-then-read is
// not atomic from the OS's point of view.
type Terminal struct {
	dev    Device
	in     *lineio.Reader
	source tty.Source

	// initial is the mode captured at open time, restored by Close.
	// restore is false when the mode could not be captured; the terminal
	// then still works for raw byte access and echoing prompts.
	initial tty.Mode
	restore bool
}

// Open resolves the controlling terminal and prepares it for line input.
//
// The device's mode at open time is captured and restored by Close. A
// device whose mode cannot be queried is still usable for Prompt-free raw
// access; only the mode-touching operations will fail.
func Open() (*Terminal, error) {
	h, err := tty.Open()
	if err != nil {
		return nil, err
	}
	t := NewTerminal(h)
	t.source = h.Source()
	return t, nil
}

// NewTerminal wraps an already-open device. Most callers want Open.
func NewTerminal(dev Device) *Terminal {
	t := &Terminal{
		dev: dev,
		in:  lineio.NewReader(dev),
	}
	if mode, err := dev.GetMode(); err == nil {
		t.initial = mode
		t.restore = true
		session := mode
		session.EnableLineInput()
		_ = dev.SetMode(session)
	}
	return t
}

// Prompt writes label to the terminal and reads one line, with the
// terminal's natural echo left on. The returned text has its line
// terminator stripped; a terminating "\r\n" is stripped entirely.
//
// An empty line is returned as "" with no error. A terminal that closes
// before any input yields lineio.ErrEndOfInput.
func (t *Terminal) Prompt(label string) (string, error) {
	var line string
	err := tty.WithEchoEnabled(t.dev, func() error {
		var err error
		line, err = t.promptLine(label)
		return err
	})
	if err != nil {
		return "", err
	}
	return line, nil
}

// PromptSensitive is Prompt with echo suppressed while the line is typed,
// for passwords and other secrets. The prior mode is restored on every exit
// path, including errors, and a compensating newline is written after the
// read, since the terminal does not echo the user's enter keystroke.
func (t *Terminal) PromptSensitive(label string) (string, error) {
	var line string
	err := tty.WithEchoDisabled(t.dev, func() error {
		var err error
		line, err = t.promptLine(label)
		return err
	})
	if err != nil {
		return "", err
	}
	return line, nil
}

func (t *Terminal) promptLine(label string) (string, error) {
	if _, err := io.WriteString(t.dev, label); err != nil {
		return "", err
	}
	return t.ReadLine()
}

// ReadLine reads one line from the terminal without writing a prompt. When
// echo is currently off it writes a newline to the output side after a
// successful read, so subsequent output does not run into the prompt line.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadLine()
	if err != nil {
		return "", err
	}
	if on, merr := t.EchoEnabled(); merr == nil && !on {
		_, _ = io.WriteString(t.dev, "\n")
	}
	return line, nil
}

// EchoEnabled reports whether the terminal currently echoes typed input.
func (t *Terminal) EchoEnabled() (bool, error) {
	mode, err := t.dev.GetMode()
	if err != nil {
		return false, err
	}
	return mode.EchoEnabled(), nil
}

// DisableEcho turns echo off until EnableEcho or Close. Prefer
// PromptSensitive, which scopes the change to a single read.
func (t *Terminal) DisableEcho() error {
	mode, err := t.dev.GetMode()
	if err != nil {
		return err
	}
	mode.DisableEcho()
	return t.dev.SetMode(mode)
}

// EnableEcho turns echo back on.
func (t *Terminal) EnableEcho() error {
	mode, err := t.dev.GetMode()
	if err != nil {
		return err
	}
	mode.EnableEcho()
	return t.dev.SetMode(mode)
}

// Fill exposes the unread buffered input bytes; see lineio.Reader.Fill.
// Raw consumers see line terminators uncut.
func (t *Terminal) Fill() ([]byte, error) {
	return t.in.Fill()
}

// Consume marks n buffered bytes as read; see lineio.Reader.Consume.
func (t *Terminal) Consume(n int) {
	t.in.Consume(n)
}

// Read reads raw bytes from the terminal through the line buffer.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write writes raw bytes to the terminal's output side.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.dev.Write(p)
}

// Source reports which candidate stream the terminal was resolved from.
// Terminals built with NewTerminal report tty.SourceNone.
func (t *Terminal) Source() tty.Source {
	return t.source
}

// Close restores the mode captured at open time and releases the device.
func (t *Terminal) Close() error {
	if t.restore {
		_ = t.dev.SetMode(t.initial)
	}
	return t.dev.Close()
}
