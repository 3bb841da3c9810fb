package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/platform/console"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

var flagTUI bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal.

Controls:
  Any key    - Start
  Space      - Jump
  Ctrl+C     - Quit

Without a terminal (for example with piped input) the game still runs but
jumps are disabled, and a line of input starts it.

With --tui the game runs in the same full-screen interface the SSH server
uses, which also offers restart (r) and quit (q) after game over.

Examples:
  runner play
  runner play --seed 42
  runner play --config ./runner.yaml
  LANERUNNER_JUMP_DURATION=4 runner play`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Use the full-screen Bubble Tea interface")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	// Frames own stdout; keep stderr quiet unless asked.
	fallback := log.WarnLevel
	if flagLogFile != "" {
		fallback = log.InfoLevel
	}
	logger, closeLog, err := newLogger("runner", fallback)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer closeLog()

	cfg, source, err := config.Load(flagConfig, skippedConfigWarning(logger))
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	if flagTUI {
		if err := tui.Run(cfg, flagSeed, tui.WithLogger(logger)); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := console.Play(ctx, console.Options{
		Config: cfg,
		Seed:   flagSeed,
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	if res.Reason == console.EndInterrupted {
		logger.Info("interrupted", "score", res.Score)
	}
	return nil
}
