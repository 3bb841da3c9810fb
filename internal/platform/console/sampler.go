package console

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// waitTimeoutMs bounds each blocking poll in WaitKey so cancellation is noticed.
const waitTimeoutMs = 100

// Sampler polls the terminal for the jump key without blocking.
// A disabled sampler (no raw mode) always reports InputNone.
type Sampler struct {
	in      *os.File
	fd      int
	enabled bool
	buf     [1]byte
}

// NewSampler creates a sampler reading from in. Pass enabled=false when raw
// mode could not be acquired; Poll then fails open.
func NewSampler(in *os.File, enabled bool) *Sampler {
	return &Sampler{
		in:      in,
		fd:      int(in.Fd()),
		enabled: enabled,
	}
}

// Enabled reports whether the sampler reads the terminal at all.
func (s *Sampler) Enabled() bool {
	return s.enabled
}

// Poll drains at most one buffered byte and maps it to an input.
// It never blocks; errors are reported as InputNone.
func (s *Sampler) Poll() core.Input {
	if !s.enabled {
		return core.InputNone
	}
	b, ok, _ := s.readByte(0)
	if !ok {
		return core.InputNone
	}
	return core.ParseKey(b)
}

// WaitKey blocks until any key is pressed or ctx is done.
// Without raw mode it waits for a full line instead.
func (s *Sampler) WaitKey(ctx context.Context) error {
	if !s.enabled {
		return waitLine(ctx, s.in)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, ok, err := s.readByte(waitTimeoutMs)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
}

// waitLine reads one line from r, returning early if ctx is done.
// EOF counts as a confirmation so piped or closed stdin does not hang.
// On cancellation the reading goroutine stays blocked on r until r yields
// a line, EOF or an error; callers only cancel when the process is exiting.
func waitLine(ctx context.Context, r io.Reader) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		//nolint:errcheck // EOF and read errors both mean "go ahead"
		bufio.NewReader(r).ReadString('\n')
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
