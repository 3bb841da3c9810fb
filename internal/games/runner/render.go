package runner

import (
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Rows of the lane screen.
const (
	airRow    = 0
	groundRow = 1
)

// Hint is the control line shown under the lanes.
const Hint = "Press SPACE to jump."

// Frame is one rendered tick: a score line and two lanes of exactly
// lane-length glyphs each.
type Frame struct {
	Score  string
	Air    string
	Ground string
}

// Lines returns the frame as printable lines: score, air lane, ground lane,
// a blank separator and the control hint.
func (f Frame) Lines() []string {
	return []string{f.Score, f.Air, f.Ground, "", Hint}
}

// Render draws the state into a frame. It has no side effects.
func Render(s State, cfg config.RunnerConfig) Frame {
	character, obstacle, ground, blank := cfg.Glyphs.Runes()

	screen := core.NewScreen(cfg.Lane.Length, 2)
	screen.FillRow(airRow, blank)
	screen.FillRow(groundRow, ground)

	// Obstacles at the spawn column (== lane length) are off-screen and clip.
	for _, p := range s.Obstacles {
		screen.Set(p, groundRow, obstacle)
	}

	if s.Airborne {
		screen.Set(s.CharacterPosition, airRow, character)
	} else {
		screen.Set(s.CharacterPosition, groundRow, character)
	}

	return Frame{
		Score:  fmt.Sprintf("Score: %d", s.Score),
		Air:    screen.Row(airRow),
		Ground: screen.Row(groundRow),
	}
}
