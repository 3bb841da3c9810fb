// runner is an endless runner for the terminal: jump over the obstacles
// scrolling toward you for as long as you can.
//
// Usage:
//
//	runner                   - Play in this terminal
//	runner play [--tui]      - Play in this terminal
//	runner serve             - Start SSH server for remote play
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--config <path>     - Use a custom runner.yaml
//	--log-file <path>   - Write logs to a file instead of stderr
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - an endless runner in your terminal",
	Long: `Lane Runner is a terminal endless runner. Your character stays in place
while obstacles scroll toward it; press SPACE to jump over them. The score
grows every tick and the game speeds up until you hit something.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  runner
  runner play --seed 42
  runner serve --ssh :2222
  runner config --config ./runner.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger from the global flags. Without
// --log-level, fallback applies. The returned closer releases the log file.
func newLogger(prefix string, fallback log.Level) (*log.Logger, func() error, error) {
	var (
		w      io.Writer = os.Stderr
		closer           = func() error { return nil }
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	level := fallback
	if flagLogLevel != "" {
		parsed, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			//nolint:errcheck // Closing on the error path
			closer()
			return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
		}
		level = parsed
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// skippedConfigWarning logs config files that exist but could not be parsed.
func skippedConfigWarning(logger *log.Logger) config.LoadOption {
	return config.WithSkipHandler(func(path string, err error) {
		logger.Warn("ignoring unreadable config file", "path", path, "error", err)
	})
}
