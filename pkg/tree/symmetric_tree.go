package tree

// Symmetric returns a perfectly-symmetric tree where all branches deviate at the same
// angle. Every layer shares a single child junction.
func Symmetric(layers int, angle float64) *Tree {
	if layers == 0 {
		return nil
	}

	children := Symmetric(layers-1, angle)
	return &Tree{
		LeftP:      0.5,
		LeftAngle:  angle,
		RightAngle: angle,
		Left:       children,
		Right:      children,
	}
}
