package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// quietConfig returns the default config with spawning disabled so tests
// can place obstacles by hand.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnProbability = 0
	return cfg
}

func newRunning(t *testing.T, cfg config.RunnerConfig) *Game {
	t.Helper()
	g := New(cfg, 1)
	if !g.Start() {
		t.Fatal("Start() on a fresh game should succeed")
	}
	return g
}

func TestGameScoreIncrementsEveryTick(t *testing.T) {
	g := newRunning(t, quietConfig())

	for n := 1; n <= 100; n++ {
		res := g.Step(core.NoInput)
		if res.Collided {
			t.Fatalf("unexpected collision on tick %d", n)
		}
		if res.State.Score != n {
			t.Fatalf("after %d ticks score = %d, expected %d", n, res.State.Score, n)
		}
		if res.State.TickCount != n {
			t.Fatalf("after %d ticks tickCount = %d, expected %d", n, res.State.TickCount, n)
		}
	}
}

func TestGameFourQuietTicks(t *testing.T) {
	cfg := quietConfig()
	g := newRunning(t, cfg)
	pos := cfg.Lane.CharacterPosition

	for i := 0; i < 4; i++ {
		res := g.Step(core.NoInput)
		if res.Collided {
			t.Fatalf("unexpected collision on tick %d", i+1)
		}

		frame := g.Frame()
		if []rune(frame.Ground)[pos] != '@' {
			t.Errorf("tick %d: character should be on the ground lane, got %q", i+1, frame.Ground)
		}
		if strings.ContainsRune(frame.Air, '@') {
			t.Errorf("tick %d: air lane should be empty, got %q", i+1, frame.Air)
		}
	}

	if s := g.State(); s.Score != 4 {
		t.Errorf("score = %d, expected 4", s.Score)
	}
}

func TestGameObstacleReachesCharacterOnTick45(t *testing.T) {
	cfg := quietConfig()
	g := newRunning(t, cfg)
	g.track.Place(cfg.Lane.Length) // spawned at 50

	for tick := 1; tick < 45; tick++ {
		res := g.Step(core.NoInput)
		if res.Collided {
			t.Fatalf("collision too early on tick %d", tick)
		}
		if want := cfg.Lane.Length - tick; res.State.Obstacles[0] != want {
			t.Fatalf("tick %d: obstacle at %d, expected %d", tick, res.State.Obstacles[0], want)
		}
	}

	res := g.Step(core.NoInput)
	if !res.Collided {
		t.Fatalf("expected collision on tick 45, obstacles = %v", res.State.Obstacles)
	}
	if res.State.Phase != PhaseEnded {
		t.Errorf("phase = %v, expected ended", res.State.Phase)
	}
	if res.State.Score != 45 {
		t.Errorf("final score = %d, expected 45", res.State.Score)
	}
}

func TestGameJumpAtContactAvoidsCollision(t *testing.T) {
	cfg := quietConfig()
	g := newRunning(t, cfg)
	g.track.Place(cfg.Lane.Length)

	script := make([]core.Input, 44)
	script = append(script, core.InputJump)
	in := core.NewScriptedSampler(script...)

	for tick := 1; tick <= 60; tick++ {
		res := g.Step(in)
		if res.Collided {
			t.Fatalf("unexpected collision on tick %d", tick)
		}
		if tick == 45 {
			if !res.Jumped || !res.State.Airborne {
				t.Fatalf("tick 45: expected a jump to start, got %+v", res)
			}
			if !g.track.Contains(cfg.Lane.CharacterPosition) {
				t.Fatal("tick 45: obstacle should overlap the character column")
			}
		}
	}
}

func TestGameCollisionWithAlwaysSpawning(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnProbability = 1
	g := newRunning(t, cfg)

	// First spawn is on tick 5 at 50, moved to 49 the same tick, and
	// reaches column 5 forty-four ticks later.
	var res StepResult
	for res.State.Phase != PhaseEnded && res.State.TickCount < 100 {
		res = g.Step(core.NoInput)
		if res.State.TickCount%cfg.Obstacles.Frequency == 0 && !res.Spawned {
			t.Fatalf("tick %d should spawn with probability 1", res.State.TickCount)
		}
	}
	if !res.Collided || res.State.TickCount != 49 {
		t.Errorf("expected collision on tick 49, got tick %d collided=%v", res.State.TickCount, res.Collided)
	}
}

func TestGameHoldingJumpDoesNotExtendAirtime(t *testing.T) {
	g := newRunning(t, quietConfig())
	always := core.SamplerFunc(func() core.Input { return core.InputJump })

	var starts []int
	for tick := 1; tick <= 9; tick++ {
		res := g.Step(always)
		if res.Jumped {
			starts = append(starts, tick)
		}
	}

	expected := []int{1, 4, 7}
	if len(starts) != len(expected) {
		t.Fatalf("jump starts = %v, expected %v", starts, expected)
	}
	for i := range expected {
		if starts[i] != expected[i] {
			t.Fatalf("jump starts = %v, expected %v", starts, expected)
		}
	}
}

func TestGameStepWhenNotRunning(t *testing.T) {
	g := New(quietConfig(), 1)
	polled := false
	in := core.SamplerFunc(func() core.Input {
		polled = true
		return core.InputJump
	})

	res := g.Step(in)
	if polled {
		t.Error("Step before Start should not poll input")
	}
	if res.State.TickCount != 0 || res.State.Score != 0 {
		t.Errorf("Step before Start should not advance, got %+v", res.State)
	}
	if res.State.Phase != PhaseStarting {
		t.Errorf("phase = %v, expected starting", res.State.Phase)
	}

	g.Start()
	if g.Start() {
		t.Error("second Start() should report false")
	}
}

func TestGameEndedIgnoresSteps(t *testing.T) {
	cfg := quietConfig()
	g := newRunning(t, cfg)
	g.track.Place(cfg.Lane.CharacterPosition + 1)

	res := g.Step(core.NoInput)
	if !res.Collided {
		t.Fatal("expected collision on first tick")
	}
	after := g.Step(core.NoInput)
	if after.State.Score != res.State.Score || after.Collided {
		t.Errorf("ended game should not advance: %+v", after)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	seed := int64(12345)

	// Jump every 7 ticks
	inputs := make([]core.Input, 400)
	for i := range inputs {
		if i%7 == 0 {
			inputs[i] = core.InputJump
		}
	}

	run := func() State {
		g := New(cfg, seed)
		g.Start()
		in := core.NewScriptedSampler(inputs...)
		var res StepResult
		for range inputs {
			res = g.Step(in)
			if res.Collided {
				break
			}
			g.Accelerate()
		}
		return res.State
	}

	s1, s2 := run(), run()
	if s1.Score != s2.Score || s1.TickCount != s2.TickCount {
		t.Errorf("Determinism failed: run1=%+v run2=%+v", s1, s2)
	}
	if len(s1.Obstacles) != len(s2.Obstacles) {
		t.Fatalf("Determinism failed: obstacles %v vs %v", s1.Obstacles, s2.Obstacles)
	}
	for i := range s1.Obstacles {
		if s1.Obstacles[i] != s2.Obstacles[i] {
			t.Fatalf("Determinism failed: obstacles %v vs %v", s1.Obstacles, s2.Obstacles)
		}
	}
}

func TestGameReset(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	g := newRunning(t, cfg)

	for i := 0; i < 30; i++ {
		g.Step(core.NoInput)
		g.Accelerate()
	}

	g.Reset(99)
	s := g.State()

	if s.Score != 0 || s.TickCount != 0 {
		t.Errorf("Reset should clear score and ticks, got %+v", s)
	}
	if s.Airborne || len(s.Obstacles) != 0 {
		t.Errorf("Reset should clear jump and obstacles, got %+v", s)
	}
	if s.TickSpeed != cfg.Pace.Initial {
		t.Errorf("Reset should restore tick speed, got %s", s.TickSpeed)
	}
	if s.Phase != PhaseStarting {
		t.Errorf("Reset should return to starting, got %v", s.Phase)
	}
	if g.Seed() != 99 {
		t.Errorf("Seed() = %d, expected 99", g.Seed())
	}
}

func TestGameAccelerate(t *testing.T) {
	g := newRunning(t, quietConfig())

	prev := g.TickSpeed()
	if prev != 200*time.Millisecond {
		t.Fatalf("initial tick speed = %s, expected 200ms", prev)
	}
	for i := 0; i < 500; i++ {
		next := g.Accelerate()
		if next > prev {
			t.Fatalf("tick speed increased from %s to %s", prev, next)
		}
		if next < 50*time.Millisecond {
			t.Fatalf("tick speed %s dropped below the floor", next)
		}
		prev = next
	}
	if prev != 50*time.Millisecond {
		t.Errorf("tick speed after 500 steps = %s, expected floor 50ms", prev)
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseStarting: "starting",
		PhaseRunning:  "running",
		PhaseEnded:    "ended",
		Phase(9):      "unknown",
	}
	for p, want := range tests {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", p, p.String(), want)
		}
	}
}
