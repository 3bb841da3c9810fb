package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// Options configures a local play session.
type Options struct {
	Config config.RunnerConfig
	Seed   int64 // 0 = time-based
	In     *os.File
	Out    io.Writer
	Logger *log.Logger
}

// Play runs one game on the terminal: acquire raw mode, show the banner,
// wait for a keypress, run the loop, and restore the terminal on every exit
// path. A terminal without raw support degrades to playing without input.
func Play(ctx context.Context, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	raw, err := EnterRawMode(int(opts.In.Fd()))
	switch {
	case err == nil:
		defer func() {
			if restoreErr := raw.Restore(); restoreErr != nil {
				logger.Error("could not restore terminal", "error", restoreErr)
			}
		}()
	case errors.Is(err, ErrNotTerminal), errors.Is(err, ErrUnsupported):
		logger.Warn("raw terminal unavailable, jump input disabled", "error", err)
	default:
		return Result{}, fmt.Errorf("console: %w", err)
	}

	if f, ok := opts.Out.(*os.File); ok {
		if w, _, sizeErr := term.GetSize(int(f.Fd())); sizeErr == nil && w < opts.Config.Lane.Length {
			logger.Warn("terminal is narrower than the lane", "width", w, "lane", opts.Config.Lane.Length)
		}
	}

	sampler := NewSampler(opts.In, raw != nil)
	display := NewDisplay(opts.Out)

	//nolint:errcheck // Cursor visibility is cosmetic
	display.HideCursor()
	//nolint:errcheck // Cursor visibility is cosmetic
	defer display.ShowCursor()

	if err := display.Banner(); err != nil {
		return Result{}, fmt.Errorf("console: write banner: %w", err)
	}
	if err := sampler.WaitKey(ctx); err != nil {
		if ctx.Err() != nil {
			return Result{Reason: EndInterrupted}, nil
		}
		return Result{}, fmt.Errorf("console: wait for start: %w", err)
	}

	game := runner.New(opts.Config, seed)
	logger.Info("run started", "seed", seed, "input", sampler.Enabled())

	res, err := NewLoop(game, sampler, display, logger).Run(ctx)
	if err != nil {
		return res, err
	}

	logger.Info("run ended", "score", res.Score, "ticks", res.Ticks, "reason", res.Reason)
	return res, nil
}
