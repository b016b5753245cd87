package tree

import "math"

// BalancedConstant returns a perfectly-balanced tree where all branches deviate with the same proportions.
// Angle is the deviation for the smaller branch, so right if pLeft > 0.5.
func BalancedConstant(layers int, angle float64, pLeft float64) *Tree {
	if layers == 0 {
		return nil
	}

	children := BalancedConstant(layers-1, angle, pLeft)
	return balanced(pLeft, angle, children, children)
}

// balanced builds a junction whose larger branch turns just enough for both
// branches' outer edges to stay parallel.
func balanced(pLeft, angle float64, left, right *Tree) *Tree {
	result := &Tree{
		LeftP: pLeft,
		Left:  left,
		Right: right,
	}

	if pLeft < 0.5 {
		result.LeftAngle = angle
		result.RightAngle = math.Asin((pLeft / (1.0 - pLeft)) * math.Sin(angle))
	} else {
		result.LeftAngle = math.Asin(((1.0 - pLeft) / pLeft) * math.Sin(angle))
		result.RightAngle = angle
	}

	return result
}
