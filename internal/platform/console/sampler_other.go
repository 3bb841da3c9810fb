//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package console

// readByte never reads anything without termios; the sampler is always
// disabled on these platforms.
func (s *Sampler) readByte(timeoutMs int) (byte, bool, error) {
	return 0, false, nil
}
