package tree

import (
	"math"
	"math/rand"
)

// RandomBalanced returns a balanced tree whose proportions and angles are
// drawn independently at every junction.
func RandomBalanced(layers int, r *rand.Rand) *Tree {
	if layers == 0 {
		return nil
	}

	pLeft := r.Float64()*0.6 + 0.2
	angle := math.Pi / 3.0 * (r.Float64()*0.6 + 0.2)

	left := RandomBalanced(layers-1, r)
	right := RandomBalanced(layers-1, r)
	return balanced(pLeft, angle, left, right)
}
