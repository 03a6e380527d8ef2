package tty

// ModeController is the mode surface of a terminal device. Handle implements
// it; tests substitute in-memory devices.
type ModeController interface {
	GetMode() (Mode, error)
	SetMode(Mode) error
}

// WithEchoDisabled runs fn with the terminal's echo suppressed, restoring
// the prior mode on every exit path, including an error from fn. The mode is
// re-queried on each call rather than remembered from earlier ones: the
// terminal is global state and other actors can reconfigure it between
// calls.
//
// If echo is already off, fn runs without any mode change. If the mode
// cannot be queried or set, fn does not run and the terminal is left
// untouched.
func WithEchoDisabled(mc ModeController, fn func() error) error {
	mode, err := mc.GetMode()
	if err != nil {
		return err
	}
	if !mode.EchoEnabled() {
		return fn()
	}
	muted := mode
	muted.DisableEcho()
	if err := mc.SetMode(muted); err != nil {
		return err
	}
	defer func() {
		// Restore failures are unreportable here without masking fn's
		// result; the next mode operation will surface them.
		_ = mc.SetMode(mode)
	}()
	return fn()
}

// WithEchoEnabled is the symmetric scope: it runs fn with echo on, restoring
// the prior mode afterwards. When echo is already on, the common case, it is
// a pass-through with no mode syscalls beyond the query.
func WithEchoEnabled(mc ModeController, fn func() error) error {
	mode, err := mc.GetMode()
	if err != nil {
		return err
	}
	if mode.EchoEnabled() {
		return fn()
	}
	loud := mode
	loud.EnableEcho()
	if err := mc.SetMode(loud); err != nil {
		return err
	}
	defer func() {
		_ = mc.SetMode(mode)
	}()
	return fn()
}
