package runner

import (
	"math/rand"
	"sort"
)

// ObstacleSet answers whether a lane column holds an obstacle.
type ObstacleSet interface {
	Contains(pos int) bool
}

// Track holds the obstacles on the ground lane. Positions form a set:
// two obstacles that land on the same column collapse into one.
type Track struct {
	length    int
	positions map[int]struct{}
	rng       *rand.Rand
}

// NewTrack creates an empty track of the given lane length with the given RNG seed.
func NewTrack(length int, seed int64) *Track {
	t := &Track{
		length:    length,
		positions: make(map[int]struct{}, 8),
	}
	t.Reset(seed)
	return t
}

// Reset clears all obstacles and reseeds the RNG.
func (t *Track) Reset(seed int64) {
	clear(t.positions)
	t.rng = rand.New(rand.NewSource(seed))
}

// Tick moves every obstacle one column toward the character, then prunes
// obstacles that left the lane.
func (t *Track) Tick() {
	next := make(map[int]struct{}, len(t.positions))
	for p := range t.positions {
		if p-1 >= 0 {
			next[p-1] = struct{}{}
		}
	}
	t.positions = next
}

// MaybeSpawn spawns at most one obstacle at the far end of the lane.
// Only every frequency-th tick qualifies, and a qualifying tick spawns with
// the given probability. Returns true if an obstacle was spawned.
func (t *Track) MaybeSpawn(tickIndex, frequency int, probability float64) bool {
	if frequency < 1 || tickIndex%frequency != 0 {
		return false
	}
	if probability <= 0 {
		return false
	}
	if probability < 1 && t.rng.Float64() >= probability {
		return false
	}
	t.Place(t.length)
	return true
}

// Place adds an obstacle at pos. Positions outside [0, length] are ignored.
func (t *Track) Place(pos int) {
	if pos < 0 || pos > t.length {
		return
	}
	t.positions[pos] = struct{}{}
}

// Contains reports whether an obstacle occupies pos.
func (t *Track) Contains(pos int) bool {
	_, ok := t.positions[pos]
	return ok
}

// Positions returns the live obstacle positions in ascending order.
func (t *Track) Positions() []int {
	out := make([]int, 0, len(t.positions))
	for p := range t.positions {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// positionSet is an ObstacleSet over a snapshot of positions.
type positionSet map[int]struct{}

// Contains reports whether pos is in the set.
func (s positionSet) Contains(pos int) bool {
	_, ok := s[pos]
	return ok
}

// NewObstacleSet builds an ObstacleSet from explicit positions.
func NewObstacleSet(positions ...int) ObstacleSet {
	s := make(positionSet, len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}
