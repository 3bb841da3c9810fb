package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// glyphWidth measures cells independent of the host locale, treating
// East Asian ambiguous runes (box drawing, shades) as narrow.
var glyphWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Validate checks that the configuration describes a playable run.
func (c RunnerConfig) Validate() error {
	if c.Lane.Length < 1 {
		return fmt.Errorf("%w: lane.length must be positive, got %d", ErrInvalid, c.Lane.Length)
	}
	if c.Lane.CharacterPosition < 0 || c.Lane.CharacterPosition >= c.Lane.Length {
		return fmt.Errorf("%w: lane.character_position must be in [0, %d), got %d",
			ErrInvalid, c.Lane.Length, c.Lane.CharacterPosition)
	}
	if c.Jump.Duration < 1 {
		return fmt.Errorf("%w: jump.duration must be at least 1, got %d", ErrInvalid, c.Jump.Duration)
	}
	if c.Obstacles.Frequency < 1 {
		return fmt.Errorf("%w: obstacles.frequency must be at least 1, got %d", ErrInvalid, c.Obstacles.Frequency)
	}
	if p := c.Obstacles.SpawnProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: obstacles.spawn_probability must be in [0, 1], got %g", ErrInvalid, p)
	}
	if c.Pace.Initial <= 0 {
		return fmt.Errorf("%w: pace.initial must be positive, got %s", ErrInvalid, c.Pace.Initial)
	}
	if c.Pace.Floor <= 0 || c.Pace.Floor > c.Pace.Initial {
		return fmt.Errorf("%w: pace.floor must be in (0, %s], got %s", ErrInvalid, c.Pace.Initial, c.Pace.Floor)
	}
	if c.Pace.Step < 0 {
		return fmt.Errorf("%w: pace.step must not be negative, got %s", ErrInvalid, c.Pace.Step)
	}

	glyphs := []struct {
		name, value string
	}{
		{"glyphs.character", c.Glyphs.Character},
		{"glyphs.obstacle", c.Glyphs.Obstacle},
		{"glyphs.ground", c.Glyphs.Ground},
		{"glyphs.blank", c.Glyphs.Blank},
	}
	for _, g := range glyphs {
		if err := validateGlyph(g.name, g.value); err != nil {
			return err
		}
	}
	return nil
}

// validateGlyph requires exactly one rune occupying exactly one terminal cell,
// otherwise the lanes would not line up.
func validateGlyph(name, value string) error {
	if utf8.RuneCountInString(value) != 1 {
		return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalid, name, value)
	}
	if w := glyphWidth.StringWidth(value); w != 1 {
		return fmt.Errorf("%w: %s must be one cell wide, %q is %d", ErrInvalid, name, value, w)
	}
	return nil
}
