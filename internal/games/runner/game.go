// Package runner implements a single-lane endless runner: obstacles scroll
// toward a fixed character who survives by jumping over them, scoring one
// point per tick until the first collision.
package runner

import (
	"time"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Phase is the lifecycle of a single run.
type Phase int

const (
	PhaseStarting Phase = iota // Waiting for the start keypress
	PhaseRunning               // Ticking
	PhaseEnded                 // Collided; the run is over
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStarting:
		return "starting"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// State is a snapshot of a run.
type State struct {
	CharacterPosition      int
	Score                  int
	Airborne               bool
	AirborneTicksRemaining int
	Obstacles              []int // Ascending
	TickSpeed              time.Duration
	TickCount              int
	Phase                  Phase
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State    State
	Spawned  bool // An obstacle appeared at the far end this tick
	Jumped   bool // A jump started this tick
	Collided bool // The run ended this tick
}

// Game owns the state of one run and advances it tick by tick.
type Game struct {
	cfg       config.RunnerConfig
	seed      int64
	track     *Track
	jump      Jump
	pace      Pace
	score     int
	tickCount int
	phase     Phase
}

// New creates a game in the Starting phase. cfg must be valid.
func New(cfg config.RunnerConfig, seed int64) *Game {
	g := &Game{cfg: cfg}
	g.Reset(seed)
	return g
}

// Reset discards the current run and prepares a fresh one.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if g.track == nil {
		g.track = NewTrack(g.cfg.Lane.Length, seed)
	} else {
		g.track.Reset(seed)
	}
	g.jump = NewJump(g.cfg.Jump.Duration)
	g.pace = NewPace(g.cfg.Pace)
	g.score = 0
	g.tickCount = 0
	g.phase = PhaseStarting
}

// Start moves a fresh game into the Running phase.
// Returns false if the game was not waiting to start.
func (g *Game) Start() bool {
	if g.phase != PhaseStarting {
		return false
	}
	g.phase = PhaseRunning
	return true
}

// Step advances a running game by one tick. The order is fixed: count the
// tick, maybe spawn, advance obstacles, sample input, advance the jump,
// detect collision. Steps on a game that is not running are no-ops and do
// not poll the sampler.
func (g *Game) Step(in core.Sampler) StepResult {
	if g.phase != PhaseRunning {
		return StepResult{State: g.State()}
	}

	var res StepResult

	g.tickCount++
	g.score++

	res.Spawned = g.track.MaybeSpawn(g.tickCount, g.cfg.Obstacles.Frequency, g.cfg.Obstacles.SpawnProbability)
	g.track.Tick()

	if in.Poll() == core.InputJump {
		res.Jumped = g.jump.Request()
	}
	// A jump requested this tick already consumes one tick of its duration.
	g.jump.Tick()

	if Detect(g.cfg.Lane.CharacterPosition, g.jump.Airborne(), g.track) {
		g.phase = PhaseEnded
		res.Collided = true
	}

	res.State = g.State()
	return res
}

// Frame renders the current state.
func (g *Game) Frame() Frame {
	return Render(g.State(), g.cfg)
}

// Accelerate applies one step of the speed ramp and returns the delay
// before the next tick.
func (g *Game) Accelerate() time.Duration {
	return g.pace.Accelerate()
}

// TickSpeed returns the current delay between ticks.
func (g *Game) TickSpeed() time.Duration {
	return g.pace.Current()
}

// Phase returns the lifecycle phase of the run.
func (g *Game) Phase() Phase {
	return g.phase
}

// Seed returns the RNG seed the run was reset with.
func (g *Game) Seed() int64 {
	return g.seed
}

// State returns a snapshot of the run.
func (g *Game) State() State {
	return State{
		CharacterPosition:      g.cfg.Lane.CharacterPosition,
		Score:                  g.score,
		Airborne:               g.jump.Airborne(),
		AirborneTicksRemaining: g.jump.Remaining(),
		Obstacles:              g.track.Positions(),
		TickSpeed:              g.pace.Current(),
		TickCount:              g.tickCount,
		Phase:                  g.phase,
	}
}
