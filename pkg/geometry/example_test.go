package geometry_test

import (
	"errors"
	"fmt"

	"github.com/willbeason/mandelbrot/pkg/geometry"
)

func ExampleComplex_Divide() {
	q, err := geometry.New(1, -1).Divide(geometry.New(1, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q)

	_, err = geometry.One.Divide(geometry.Zero)
	fmt.Println(errors.Is(err, geometry.ErrDivisionByZero))
	// Output:
	// Complex{real=0.0, imaginary=-1.0}
	// true
}

func ExampleComplex_Pow() {
	z := geometry.New(1, 2)
	fmt.Println(z.Pow(2))
	fmt.Println(geometry.Zero.Pow(0))
	// Output:
	// Complex{real=-3.0, imaginary=4.0}
	// Complex{real=1.0, imaginary=0.0}
}
