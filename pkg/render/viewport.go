// Package render drives fractal iteration over an image: it maps pixels to
// points in the plane, runs escape-time loops, fans rows out across workers
// and turns the accumulated values into colours and PNG files.
package render

import (
	"math"

	"github.com/willbeason/mandelbrot/pkg/geometry"
)

// Viewport is the rectangle of the complex plane an image covers.
type Viewport struct {
	Center geometry.Complex

	// Span is the height of the view in the plane; the width follows from
	// the pixel aspect ratio.
	Span float64

	Width, Height int
}

// PixelSize is the side of a single pixel in the plane.
func (v Viewport) PixelSize() float64 {
	return v.Span / float64(v.Height)
}

// TopLeft is the plane point at the top-left corner of pixel (0, 0).
func (v Viewport) TopLeft() geometry.Complex {
	halfWidth := v.Span * 0.5 * float64(v.Width) / float64(v.Height)
	return v.Center.Add(geometry.New(-halfWidth, v.Span*0.5))
}

// Point maps image coordinates to the plane. Fractional coordinates address
// positions inside a pixel, so Point(x+0.5, y+0.5) is the pixel's center.
func (v Viewport) Point(x, y float64) geometry.Complex {
	px := v.PixelSize()
	return v.TopLeft().Add(geometry.New(x*px, -y*px))
}

// Locate is the inverse of Point. It returns the pixel containing z and the
// offset of z within it, each in [0, 1). ok is false when z falls outside the
// image, apart from the one-pixel margin above and left whose splats still
// reach pixel row or column zero.
func (v Viewport) Locate(z geometry.Complex) (x, y int, dx, dy float64, ok bool) {
	px := v.PixelSize()
	d := z.Subtract(v.TopLeft())

	fx := d.Real() / px
	fy := -d.Imaginary() / px

	if fx < -1 || fx >= float64(v.Width) || math.IsNaN(fx) {
		return 0, 0, 0, 0, false
	}
	if fy < -1 || fy >= float64(v.Height) || math.IsNaN(fy) {
		return 0, 0, 0, 0, false
	}

	x0, y0 := math.Floor(fx), math.Floor(fy)
	return int(x0), int(y0), fx - x0, fy - y0, true
}

// Index is the offset of pixel (x, y) in a row-major buffer.
func (v Viewport) Index(x, y int) int {
	return x + y*v.Width
}

// Splat adds weight at z to out, shared bilinearly between the four pixels
// around it.
func (v Viewport) Splat(z geometry.Complex, weight float64, out map[int]float64) {
	x, y, dx, dy, ok := v.Locate(z)
	if !ok {
		return
	}

	if x >= 0 && y >= 0 {
		out[v.Index(x, y)] += weight * (1 - dx) * (1 - dy)
	}
	if x < v.Width-1 && y >= 0 {
		out[v.Index(x+1, y)] += weight * dx * (1 - dy)
	}
	if x >= 0 && y < v.Height-1 {
		out[v.Index(x, y+1)] += weight * (1 - dx) * dy
	}
	if x < v.Width-1 && y < v.Height-1 {
		out[v.Index(x+1, y+1)] += weight * dx * dy
	}
}
