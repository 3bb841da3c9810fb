//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package console

// RawMode is a no-op on platforms without termios.
type RawMode struct{}

// EnterRawMode always reports ErrUnsupported here; callers fall back to
// playing without input.
func EnterRawMode(fd int) (*RawMode, error) {
	return nil, ErrUnsupported
}

// Restore does nothing.
func (r *RawMode) Restore() error {
	return nil
}
