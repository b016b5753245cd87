package transforms

import "github.com/willbeason/mandelbrot/pkg/geometry"

// Mandelbrot is z² + c, with C added to every parameter c.
type Mandelbrot struct {
	C geometry.Complex
}

func (m Mandelbrot) Next(z, c geometry.Complex) geometry.Complex {
	return z.Multiply(z).Add(c).Add(m.C)
}

// At fixes the parameter c, turning the family into a single Map.
func (m Mandelbrot) At(c geometry.Complex) Map {
	return Julia2{C: c.Add(m.C)}
}
