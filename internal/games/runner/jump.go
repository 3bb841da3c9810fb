package runner

// Jump is the character's jump state machine.
//
//	Grounded + Request     -> Airborne(duration)
//	Airborne(n) + Request  -> Airborne(n)          (no double jump, no extension)
//	Airborne(n>1) + Tick   -> Airborne(n-1)
//	Airborne(1) + Tick     -> Grounded
type Jump struct {
	duration  int
	remaining int
}

// NewJump creates a grounded jump state with the given airborne duration.
func NewJump(duration int) Jump {
	if duration < 1 {
		duration = 1
	}
	return Jump{duration: duration}
}

// Request starts a jump if the character is grounded.
// Returns true if the request caused a transition.
func (j *Jump) Request() bool {
	if j.remaining > 0 {
		return false
	}
	j.remaining = j.duration
	return true
}

// Tick advances the state by one tick.
func (j *Jump) Tick() {
	if j.remaining > 0 {
		j.remaining--
	}
}

// Airborne reports whether the character is in the air.
func (j Jump) Airborne() bool {
	return j.remaining > 0
}

// Remaining returns the airborne ticks left, zero when grounded.
func (j Jump) Remaining() int {
	return j.remaining
}
