package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Lane: LaneConfig{
			Length:            50,
			CharacterPosition: 5,
		},
		Jump: JumpConfig{
			Duration: 3,
		},
		Obstacles: ObstacleConfig{
			Frequency:        5,
			SpawnProbability: 0.5,
		},
		Pace: PaceConfig{
			Initial: 200 * time.Millisecond,
			Floor:   50 * time.Millisecond,
			Step:    500 * time.Microsecond,
		},
		Glyphs: GlyphConfig{
			Character: "@",
			Obstacle:  "▓",
			Ground:    "_",
			Blank:     " ",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
