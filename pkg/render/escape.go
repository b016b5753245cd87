package render

import (
	"math"

	"github.com/willbeason/mandelbrot/pkg/geometry"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

// DefaultBailout is the escape radius for quadratic maps: once |z| > 2 the
// orbit of z² + c diverges.
const DefaultBailout = 2.0

// Escape is an escape-time iteration budget.
type Escape struct {
	MaxIterations int
	Bailout       float64
}

// Orbit is where an escape-time iteration stopped.
type Orbit struct {
	Iterations int
	Z          geometry.Complex
	Escaped    bool
}

// Step advances z on iteration i.
type Step func(i int, z geometry.Complex) geometry.Complex

// Run iterates step from z until |z| reaches the bailout radius or
// MaxIterations steps have been taken. When path is non-nil, each iterate is
// written to path[i] while it has room.
func (e Escape) Run(step Step, z geometry.Complex, path []geometry.Complex) Orbit {
	limit := e.Bailout * e.Bailout

	i := 0
	for i < e.MaxIterations && z.SquaredModulus() < limit {
		z = step(i, z)
		if i < len(path) {
			path[i] = z
		}
		i++
	}

	return Orbit{
		Iterations: i,
		Z:          z,
		Escaped:    z.SquaredModulus() >= limit,
	}
}

// Mandelbrot iterates z² + c from zero.
func (e Escape) Mandelbrot(c geometry.Complex) Orbit {
	m := transforms.Mandelbrot{}
	return e.Run(func(_ int, z geometry.Complex) geometry.Complex {
		return m.Next(z, c)
	}, geometry.Zero, nil)
}

// Julia iterates m from z.
func (e Escape) Julia(m transforms.Map, z geometry.Complex) Orbit {
	return e.Run(func(_ int, z geometry.Complex) geometry.Complex {
		return m.Next(z)
	}, z, nil)
}

// Smooth is the continuous escape count for a map of the given degree. It is
// only meaningful for escaped orbits with a bailout above 1.
func (o Orbit) Smooth(degree float64) float64 {
	return float64(o.Iterations) + 1.0 - math.Log(math.Log(o.Z.Modulus()))/math.Log(degree)
}
