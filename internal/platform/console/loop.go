package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

// ErrNotStartable is returned when Run is given a game that already ran.
var ErrNotStartable = errors.New("console: game is not waiting to start")

// EndReason tells why a run stopped.
type EndReason int

const (
	EndFailed      EndReason = iota // Setup or terminal output failed
	EndCollision                    // The character hit an obstacle
	EndInterrupted                  // The context was cancelled (signal)
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndFailed:
		return "failed"
	case EndCollision:
		return "collision"
	case EndInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Result summarizes a finished run.
type Result struct {
	Score  int
	Ticks  int
	Reason EndReason
}

// WaitFunc suspends for d or until ctx is done, returning ctx's error in that case.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Loop drives one run: step, render, speed up, sleep. It is strictly
// sequential; the sleep at the end of each tick is the only suspension point
// and the only place cancellation is observed.
type Loop struct {
	game    *runner.Game
	input   core.Sampler
	display *Display
	logger  *log.Logger
	wait    WaitFunc
}

// NewLoop creates a loop over game, reading input from in and drawing to display.
func NewLoop(game *runner.Game, in core.Sampler, display *Display, logger *log.Logger) *Loop {
	return &Loop{
		game:    game,
		input:   in,
		display: display,
		logger:  logger,
		wait:    sleepContext,
	}
}

// SetWait replaces the pacing function. Intended for tests.
func (l *Loop) SetWait(wait WaitFunc) {
	l.wait = wait
}

// Run plays the game until collision or cancellation.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	if !l.game.Start() {
		return Result{}, ErrNotStartable
	}

	for {
		res := l.game.Step(l.input)
		if res.Jumped {
			l.logger.Debug("jump", "tick", res.State.TickCount)
		}

		if res.Collided {
			if err := l.display.GameOver(res.State.Score); err != nil {
				return result(res.State, EndCollision), fmt.Errorf("console: write game over: %w", err)
			}
			return result(res.State, EndCollision), nil
		}

		if err := l.display.Frame(l.game.Frame()); err != nil {
			return result(res.State, EndFailed), fmt.Errorf("console: write frame: %w", err)
		}

		delay := l.game.Accelerate()
		if err := l.wait(ctx, delay); err != nil {
			return result(res.State, EndInterrupted), nil
		}
	}
}

func result(s runner.State, reason EndReason) Result {
	return Result{Score: s.Score, Ticks: s.TickCount, Reason: reason}
}

// sleepContext sleeps for d unless ctx ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
