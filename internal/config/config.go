// Package config provides YAML-based configuration loading for the runner,
// with environment overrides and validation.
package config

import "time"

// RunnerConfig contains all tunable parameters of a run.
type RunnerConfig struct {
	Lane      LaneConfig     `yaml:"lane" envPrefix:"LANE_"`
	Jump      JumpConfig     `yaml:"jump" envPrefix:"JUMP_"`
	Obstacles ObstacleConfig `yaml:"obstacles" envPrefix:"OBSTACLES_"`
	Pace      PaceConfig     `yaml:"pace" envPrefix:"PACE_"`
	Glyphs    GlyphConfig    `yaml:"glyphs" envPrefix:"GLYPHS_"`
}

// LaneConfig defines the geometry of the lanes.
type LaneConfig struct {
	Length            int `yaml:"length" env:"LENGTH"`                       // Width of both lanes in glyphs
	CharacterPosition int `yaml:"character_position" env:"CHARACTER_POSITION"` // Fixed column of the character
}

// JumpConfig defines how long the character stays airborne.
type JumpConfig struct {
	Duration int `yaml:"duration" env:"DURATION"` // Ticks spent airborne per jump
}

// ObstacleConfig defines obstacle spawning.
type ObstacleConfig struct {
	Frequency        int     `yaml:"frequency" env:"FREQUENCY"`                 // Spawn is attempted every Nth tick
	SpawnProbability float64 `yaml:"spawn_probability" env:"SPAWN_PROBABILITY"` // Chance a qualifying tick spawns
}

// PaceConfig defines the linear speed-up of the loop.
type PaceConfig struct {
	Initial time.Duration `yaml:"initial" env:"INITIAL"` // Delay between the first ticks
	Floor   time.Duration `yaml:"floor" env:"FLOOR"`     // Delay never drops below this
	Step    time.Duration `yaml:"step" env:"STEP"`       // Delay reduction per tick
}

// GlyphConfig defines the single-cell glyphs used to draw the lanes.
type GlyphConfig struct {
	Character string `yaml:"character" env:"CHARACTER"`
	Obstacle  string `yaml:"obstacle" env:"OBSTACLE"`
	Ground    string `yaml:"ground" env:"GROUND"`
	Blank     string `yaml:"blank" env:"BLANK"`
}

// Runes returns the glyphs as runes. Call only on a validated config.
func (g GlyphConfig) Runes() (character, obstacle, ground, blank rune) {
	return firstRune(g.Character), firstRune(g.Obstacle), firstRune(g.Ground), firstRune(g.Blank)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
