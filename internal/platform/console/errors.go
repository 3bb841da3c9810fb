// Package console runs the runner directly on the controlling terminal:
// raw input held for the whole run, a non-blocking per-tick key poll and a
// strictly sequential tick loop paced by a single sleep per tick.
package console

import "errors"

var (
	// ErrNotTerminal is returned when the input is not an interactive terminal.
	ErrNotTerminal = errors.New("console: input is not a terminal")

	// ErrUnsupported is returned on platforms without termios support.
	ErrUnsupported = errors.New("console: raw terminal mode not supported on this platform")
)
