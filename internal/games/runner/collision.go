package runner

// Detect reports whether the character at pos collides with an obstacle.
// An airborne character never collides; jumping is the only way to evade.
func Detect(pos int, airborne bool, obstacles ObstacleSet) bool {
	return !airborne && obstacles.Contains(pos)
}
