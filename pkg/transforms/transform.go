package transforms

import (
	"math/rand"

	"github.com/willbeason/mandelbrot/pkg/geometry"
)

// A Map deterministically iterates a point.
type Map interface {
	Next(geometry.Complex) geometry.Complex
}

// InitialTransform represents the initial distribution of a fractal.
type InitialTransform interface {
	First() geometry.Complex
}

// A Transform iterates a passed point.
type Transform interface {
	Next(geometry.Complex, *rand.Rand) geometry.Complex
}

// Fixed is a Transform which ignores its source of randomness.
type Fixed struct {
	M Map
}

func (f Fixed) Next(z geometry.Complex, _ *rand.Rand) geometry.Complex {
	return f.M.Next(z)
}

// Point always starts at the same place.
type Point geometry.Complex

func (p Point) First() geometry.Complex {
	return geometry.Complex(p)
}

type TransformProbability struct {
	Transform
	Probability float64
}

// ProbabilisticTransform picks the first Transform whose cumulative Probability
// exceeds a uniform draw, and restarts from First when none does.
type ProbabilisticTransform struct {
	InitialTransform
	Transforms []TransformProbability
}

func (pt ProbabilisticTransform) Next(z geometry.Complex, rng *rand.Rand) geometry.Complex {
	p := rng.Float64()

	for _, maxProb := range pt.Transforms {
		if p < maxProb.Probability {
			return maxProb.Next(z, rng)
		}
	}

	return pt.First()
}

var (
	_ Transform        = ProbabilisticTransform{}
	_ Transform        = Fixed{}
	_ InitialTransform = Point{}
)
