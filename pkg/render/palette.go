package render

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// LightBlue is the base tint for smooth-coloured escape-time images.
var LightBlue = color.RGBA64{R: 0x7fff, G: 0xafff, B: 0xffff, A: 0xffff}

// Normalize divides values in place by their maximum. All-zero input is left
// unchanged.
func Normalize(values []float64) {
	maxValue := 0.0
	for _, v := range values {
		maxValue = math.Max(maxValue, v)
	}
	if maxValue <= 0.0 {
		return
	}

	inv := 1.0 / maxValue
	for i := range values {
		values[i] *= inv
	}
}

// Tint scales base by a brightness in [0, 1]; the result is opaque.
func Tint(base color.RGBA64, brightness float64) color.RGBA64 {
	brightness = clamp01(brightness)
	return color.RGBA64{
		R: uint16(float64(base.R) * brightness),
		G: uint16(float64(base.G) * brightness),
		B: uint16(float64(base.B) * brightness),
		A: 0xffff,
	}
}

// Heat ramps p in [0, 1] from black through blue and magenta to white.
func Heat(p float64) color.RGBA64 {
	y := math.MaxUint16 * clamp01(p) * 2

	switch {
	case y < 1*math.MaxUint16:
		return color.RGBA64{R: 0, G: 0, B: uint16(y), A: 0xffff}
	case y < 1.5*math.MaxUint16:
		return color.RGBA64{R: uint16(2 * (y - 1*math.MaxUint16)), G: 0, B: 0xffff, A: 0xffff}
	case y < 2*math.MaxUint16:
		return color.RGBA64{R: 0xffff, G: uint16(2 * (y - 1.5*math.MaxUint16)), B: 0xffff, A: 0xffff}
	default:
		return color.RGBA64{R: 0xffff, G: 0xffff, B: 0xffff, A: 0xffff}
	}
}

// Overflow maps v to blue, spilling whatever exceeds full blue into red and
// green so bright regions wash out to white.
func Overflow(v float64) color.RGBA64 {
	b, rg := math.Max(v, 0), 0.0
	if b > math.MaxUint16 {
		rg = math.Min(b-math.MaxUint16, math.MaxUint16)
		b = math.MaxUint16
	}

	return color.RGBA64{R: uint16(rg), G: uint16(rg), B: uint16(b), A: 0xffff}
}

// Ranks replaces every count with its rank among the distinct counts, scaled
// to [0, 1). Equalising this way keeps sparse bright cells from flattening
// the rest of the image.
func Ranks(counts []int) []float64 {
	seen := make(map[int]struct{})
	for _, c := range counts {
		seen[c] = struct{}{}
	}

	distinct := make([]int, 0, len(seen))
	for c := range seen {
		distinct = append(distinct, c)
	}
	sort.Ints(distinct)

	rank := make(map[int]int, len(distinct))
	for i, c := range distinct {
		rank[c] = i
	}

	result := make([]float64, len(counts))
	for i, c := range counts {
		result[i] = float64(rank[c]) / float64(len(distinct))
	}
	return result
}

// RGBA64 builds a width×height image from row-major values.
func RGBA64(values []float64, width, height int, colorOf func(float64) color.RGBA64) *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, width, height))
	for i, v := range values {
		img.SetRGBA64(i%width, i/width, colorOf(v))
	}
	return img
}

// Gray16 builds a greyscale image from row-major counts, the largest count
// rendering white.
func Gray16(counts []int, width, height int) *image.Gray16 {
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	img := image.NewGray16(image.Rect(0, 0, width, height))
	if maxCount == 0 {
		return img
	}

	for i, c := range counts {
		img.SetGray16(i%width, i/width, color.Gray16{Y: uint16(c * math.MaxUint16 / maxCount)})
	}
	return img
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
