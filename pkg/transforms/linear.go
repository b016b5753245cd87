package transforms

import "github.com/willbeason/mandelbrot/pkg/geometry"

// Linear scales and rotates by Multiply, then translates by Add.
type Linear struct {
	Multiply geometry.Complex
	Add      geometry.Complex
}

// Identity leaves every point where it is.
var Identity = Linear{Multiply: geometry.One, Add: geometry.Zero}

func (l Linear) Next(z geometry.Complex) geometry.Complex {
	return z.Multiply(l.Multiply).Add(l.Add)
}

// Then returns the Linear equivalent to applying inner first, then l.
func (l Linear) Then(inner Linear) Linear {
	return Linear{
		Multiply: inner.Multiply.Multiply(l.Multiply),
		Add:      l.Next(inner.Add),
	}
}

// Inverse undoes l. It fails with geometry.ErrDivisionByZero when l collapses
// the plane to a point.
func (l Linear) Inverse() (Linear, error) {
	inv, err := l.Multiply.Reciprocal()
	if err != nil {
		return Linear{}, err
	}

	return Linear{
		Multiply: inv,
		Add:      l.Add.Negate().Multiply(inv),
	}, nil
}

var _ Map = Linear{}
