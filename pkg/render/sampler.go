package render

import (
	"context"
	"errors"
	"math"
	"math/rand"

	"github.com/willbeason/mandelbrot/pkg/geometry"
)

// Sampler averages a value over randomly jittered points inside every pixel
// of View.
type Sampler struct {
	View      Viewport
	SubPixels int
	Workers   int

	// Seed is combined with the row so output does not depend on which
	// worker renders a row.
	Seed int64
}

// ErrNoSubPixels is returned by Average when SubPixels is below one.
var ErrNoSubPixels = errors.New("render: subpixels must be positive")

// Average returns the mean of value over SubPixels samples for every pixel,
// in row-major order.
func (s Sampler) Average(ctx context.Context, value func(geometry.Complex) float64) ([]float64, error) {
	if s.SubPixels < 1 {
		return nil, ErrNoSubPixels
	}

	out := make([]float64, s.View.Width*s.View.Height)
	inv := 1.0 / float64(s.SubPixels)

	err := Rows(ctx, s.View.Height, s.Workers, func(ctx context.Context, y int) error {
		rng := rand.New(rand.NewSource(s.Seed + int64(y)))

		for x := 0; x < s.View.Width; x++ {
			b := 0.0
			for sub := 0; sub < s.SubPixels; sub++ {
				// Slightly jitter points.
				z := s.View.Point(float64(x)+rng.Float64(), float64(y)+rng.Float64())
				b += value(z)
			}
			out[s.View.Index(x, y)] = b * inv
		}

		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SmoothValue turns an escape-time orbit into a brightness: the smooth escape
// count for escaped orbits and zero for points that never escape.
func SmoothValue(o Orbit, degree float64) float64 {
	if !o.Escaped {
		return 0
	}

	s := o.Smooth(degree)
	if !(s > 0) || math.IsInf(s, 1) {
		// Orbits which overflowed to Inf or NaN contribute nothing.
		return 0
	}
	return s
}
