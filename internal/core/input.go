package core

// Input is the control signal sampled from the player once per tick.
// The runner only has one control, so a poll yields either a jump request
// or nothing at all.
type Input int

const (
	InputNone Input = iota
	InputJump       // Space - start a jump if grounded
)

// JumpKey is the only byte that produces InputJump.
const JumpKey byte = ' '

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputNone:
		return "None"
	case InputJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// ParseKey maps a single raw input byte to an Input.
// Every byte other than JumpKey is ignored.
func ParseKey(b byte) Input {
	if b == JumpKey {
		return InputJump
	}
	return InputNone
}

// Sampler is a non-blocking input source. Poll must return immediately,
// reporting InputNone when nothing is waiting.
type Sampler interface {
	Poll() Input
}

// SamplerFunc adapts an ordinary function to the Sampler interface.
type SamplerFunc func() Input

// Poll calls f().
func (f SamplerFunc) Poll() Input {
	return f()
}

// NoInput is a Sampler that never reports anything.
// Used when the terminal capability is unavailable.
var NoInput Sampler = SamplerFunc(func() Input { return InputNone })

// ScriptedSampler replays a fixed sequence of inputs, one per poll,
// and reports InputNone once the script is exhausted.
type ScriptedSampler struct {
	script []Input
	next   int
}

// NewScriptedSampler creates a sampler for the given inputs.
func NewScriptedSampler(inputs ...Input) *ScriptedSampler {
	return &ScriptedSampler{script: inputs}
}

// Poll returns the next scripted input.
func (s *ScriptedSampler) Poll() Input {
	if s.next >= len(s.script) {
		return InputNone
	}
	in := s.script[s.next]
	s.next++
	return in
}
