package transforms

import "github.com/willbeason/mandelbrot/pkg/geometry"

type Julia2 struct {
	C geometry.Complex
}

func (j Julia2) Next(z geometry.Complex) geometry.Complex {
	return z.Multiply(z).Add(j.C)
}

// JuliaN is zᴺ + C.
type JuliaN struct {
	N uint
	C geometry.Complex
}

func (j JuliaN) Next(z geometry.Complex) geometry.Complex {
	return z.Pow(j.N).Add(j.C)
}

// Alternate applies Maps in turn, selected by iteration index.
type Alternate struct {
	Maps []Map
}

func (a Alternate) At(i int) Map {
	return a.Maps[i%len(a.Maps)]
}

var (
	_ Map = Julia2{}
	_ Map = JuliaN{}
)
