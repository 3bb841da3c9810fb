package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after the config file search
and LANERUNNER_* environment overrides, as YAML.

Config file search order:
  1. --config <path>
  2. ~/.lanerunner/configs/runner.yaml
  3. ./configs/runner.yaml
  4. built-in defaults

Examples:
  runner config
  runner config --defaults > runner.yaml
  LANERUNNER_PACE_FLOOR=80ms runner config`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := config.Load(flagConfig, config.WithSkipHandler(func(_ string, err error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	//nolint:errcheck // Nothing to do if stdout is gone
	os.Stdout.Write(data)
}
