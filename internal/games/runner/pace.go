package runner

import (
	"time"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Pace is the linear difficulty ramp: the delay between ticks shrinks by a
// fixed step each tick until it reaches the floor.
type Pace struct {
	current time.Duration
	floor   time.Duration
	step    time.Duration
}

// NewPace creates a pace starting at cfg.Initial.
func NewPace(cfg config.PaceConfig) Pace {
	return Pace{
		current: cfg.Initial,
		floor:   cfg.Floor,
		step:    cfg.Step,
	}
}

// Current returns the delay before the next tick.
func (p Pace) Current() time.Duration {
	return p.current
}

// Accelerate applies one step of the ramp and returns the new delay.
func (p *Pace) Accelerate() time.Duration {
	if p.current > p.floor {
		p.current -= p.step
		if p.current < p.floor {
			p.current = p.floor
		}
	}
	return p.current
}
