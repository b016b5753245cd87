// Package geometry holds the complex-plane value type the renderers iterate on.
package geometry

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Complex is an immutable point in the complex plane.
//
// The zero value is Zero. Complex is comparable, so == and Equal agree and
// values may be used directly as map keys.
type Complex struct {
	re, im float64
}

// Zero, One and I are shared values. Treat them as constants: reassigning
// them changes every caller's arithmetic.
var (
	Zero = Complex{re: 0, im: 0}
	One  = Complex{re: 1, im: 0}
	I    = Complex{re: 0, im: 1}
)

// New returns re + im·i. Components are stored as given; NaN and Inf are not
// rejected.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromReal returns x + 0i.
func FromReal(x float64) Complex {
	return Complex{re: x}
}

// FromComplex128 converts a builtin complex value.
func FromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// Rotation returns the unit value at angle theta, measured in radians
// counter-clockwise from the positive real axis.
func Rotation(theta float64) Complex {
	sin, cos := math.Sincos(theta)
	return Complex{re: cos, im: sin}
}

func (z Complex) Real() float64 {
	return z.re
}

func (z Complex) Imaginary() float64 {
	return z.im
}

// Complex128 converts z to the builtin complex type.
func (z Complex) Complex128() complex128 {
	return complex(z.re, z.im)
}

func (z Complex) Add(o Complex) Complex {
	return Complex{re: z.re + o.re, im: z.im + o.im}
}

func (z Complex) Subtract(o Complex) Complex {
	return Complex{re: z.re - o.re, im: z.im - o.im}
}

func (z Complex) Negate() Complex {
	return Complex{re: -z.re, im: -z.im}
}

func (z Complex) Conjugate() Complex {
	return Complex{re: z.re, im: -z.im}
}

func (z Complex) Multiply(o Complex) Complex {
	return Complex{
		re: z.re*o.re - z.im*o.im,
		im: z.re*o.im + z.im*o.re,
	}
}

// Scale multiplies both components by the real scalar k.
func (z Complex) Scale(k float64) Complex {
	return Complex{re: z.re * k, im: z.im * k}
}

// SquaredModulus is |z|², which avoids a square root when comparing magnitudes.
func (z Complex) SquaredModulus() float64 {
	return z.re*z.re + z.im*z.im
}

func (z Complex) Modulus() float64 {
	return math.Sqrt(z.SquaredModulus())
}

// Reciprocal returns 1/z, or ErrDivisionByZero if z is zero. Non-zero values
// whose squared modulus underflows yield Inf and NaN components instead.
func (z Complex) Reciprocal() (Complex, error) {
	if z.re == 0 && z.im == 0 {
		return Complex{}, ErrDivisionByZero
	}

	return z.Conjugate().Scale(1 / z.SquaredModulus()), nil
}

// Divide returns z/o, or ErrDivisionByZero if o is Zero.
func (z Complex) Divide(o Complex) (Complex, error) {
	inv, err := o.Reciprocal()
	if err != nil {
		return Complex{}, err
	}

	return z.Multiply(inv), nil
}

// Pow returns zⁿ. Pow(0) is One for every z, Zero included.
func (z Complex) Pow(n uint) Complex {
	if n == 0 {
		return One
	}

	// Binary exponentiation. The first factor is taken as is rather than
	// multiplied into One so that Pow(1) == z and Pow(2) == z.Multiply(z)
	// hold exactly, even for infinite components.
	var result Complex
	started := false
	base := z
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			if started {
				result = result.Multiply(base)
			} else {
				result = base
				started = true
			}
		}
		if n > 1 {
			base = base.Multiply(base)
		}
	}

	return result
}

// PowInt is Pow extended to negative exponents, where z⁻ⁿ = 1/zⁿ. It returns
// ErrDivisionByZero for Zero raised to a negative power.
func (z Complex) PowInt(n int) (Complex, error) {
	if n >= 0 {
		return z.Pow(uint(n)), nil
	}

	// -n overflows for math.MinInt; uint conversion of the negation is still
	// the correct magnitude.
	return z.Pow(uint(-n)).Reciprocal()
}

// Equal reports whether both components are equal under IEEE-754 comparison.
// No tolerance is applied; see ApproxEqual.
func (z Complex) Equal(o Complex) bool {
	return z.re == o.re && z.im == o.im
}

// ApproxEqual reports whether both components differ by at most eps.
func (z Complex) ApproxEqual(o Complex, eps float64) bool {
	return math.Abs(z.re-o.re) <= eps && math.Abs(z.im-o.im) <= eps
}

// Hash returns a hash of z consistent with Equal.
func (z Complex) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], hashBits(z.re))
	binary.LittleEndian.PutUint64(buf[8:], hashBits(z.im))

	return xxhash.Sum64(buf[:])
}

// hashBits folds -0 into +0, which compare equal.
func hashBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

// String renders z for diagnostics, e.g. "Complex{real=1.0, imaginary=-1.0}".
func (z Complex) String() string {
	return "Complex{real=" + formatFloat(z.re) + ", imaginary=" + formatFloat(z.im) + "}"
}
