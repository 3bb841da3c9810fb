//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package console

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// RawMode holds the terminal in non-canonical, no-echo mode until Restore.
// Signal generation stays enabled so Ctrl+C still interrupts the process.
type RawMode struct {
	fd     int
	saved  unix.Termios
	active bool
}

// EnterRawMode switches fd to raw input and remembers the previous mode.
func EnterRawMode(fd int) (*RawMode, error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("console: read terminal mode: %w", err)
	}
	saved := *t

	t.Lflag &^= unix.ICANON | unix.ECHO
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, t); err != nil {
		return nil, fmt.Errorf("console: set raw mode: %w", err)
	}

	return &RawMode{fd: fd, saved: saved, active: true}, nil
}

// Restore puts the terminal back in the mode it had before EnterRawMode.
// It is safe to call more than once and on a nil RawMode.
func (r *RawMode) Restore() error {
	if r == nil || !r.active {
		return nil
	}
	r.active = false
	if err := unix.IoctlSetTermios(r.fd, ioctlWriteTermios, &r.saved); err != nil {
		return fmt.Errorf("console: restore terminal mode: %w", err)
	}
	return nil
}
