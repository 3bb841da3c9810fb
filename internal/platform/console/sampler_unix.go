//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package console

import (
	"io"

	"golang.org/x/sys/unix"
)

// readByte waits up to timeoutMs for input and reads a single byte.
// A zero timeout makes it a pure poll. ok is false when nothing was read.
func (s *Sampler) readByte(timeoutMs int) (b byte, ok bool, err error) {
	fds := []unix.PollFd{
		{Fd: int32(s.fd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n == 0 || fds[0].Revents&(unix.POLLIN|unix.POLLHUP) == 0 {
		return 0, false, nil
	}

	rn, err := unix.Read(s.fd, s.buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, err
	}
	if rn == 0 {
		return 0, false, io.EOF
	}
	return s.buf[0], true, nil
}
