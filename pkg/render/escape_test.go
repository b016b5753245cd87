package render_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/mandelbrot/pkg/geometry"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

func TestEscape_Mandelbrot(t *testing.T) {
	e := render.Escape{MaxIterations: 100, Bailout: render.DefaultBailout}

	tcs := []struct {
		name    string
		c       geometry.Complex
		escaped bool
		iters   int
	}{
		{"origin", geometry.Zero, false, 100},
		{"period two", geometry.New(-1, 0), false, 100},
		{"cusp neighbour", geometry.New(0.25, 0), false, 100},
		{"i", geometry.I, false, 100},
		{"outside", geometry.New(1, 0), true, 2},
		{"far outside", geometry.New(3, 0), true, 1},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			o := e.Mandelbrot(tc.c)
			assert.Equal(t, tc.escaped, o.Escaped)
			assert.Equal(t, tc.iters, o.Iterations)
		})
	}
}

func TestEscape_StartOutside(t *testing.T) {
	e := render.Escape{MaxIterations: 10, Bailout: 2}

	o := e.Julia(transforms.Julia2{}, geometry.New(5, 0))
	assert.True(t, o.Escaped)
	assert.Equal(t, 0, o.Iterations)
	assert.Equal(t, geometry.New(5, 0), o.Z)
}

func TestEscape_RunRecordsPath(t *testing.T) {
	e := render.Escape{MaxIterations: 10, Bailout: 100}

	path := make([]geometry.Complex, 3)
	o := e.Run(func(i int, z geometry.Complex) geometry.Complex {
		return z.Add(geometry.FromReal(float64(i + 1)))
	}, geometry.Zero, path)

	assert.Equal(t, 10, o.Iterations)
	assert.False(t, o.Escaped)
	assert.Equal(t, []geometry.Complex{
		geometry.FromReal(1),
		geometry.FromReal(3),
		geometry.FromReal(6),
	}, path)
	assert.Equal(t, geometry.FromReal(55), o.Z)
}

func TestEscape_Julia(t *testing.T) {
	e := render.Escape{MaxIterations: 50, Bailout: 2}

	// The unit circle is invariant under z² and never escapes.
	o := e.Julia(transforms.Julia2{}, geometry.Rotation(1))
	assert.False(t, o.Escaped)
	assert.Equal(t, 50, o.Iterations)

	o = e.Julia(transforms.JuliaN{N: 3}, geometry.FromReal(1.5))
	assert.True(t, o.Escaped)
	assert.Equal(t, 1, o.Iterations)
}

func TestOrbit_Smooth(t *testing.T) {
	e := render.Escape{MaxIterations: 1000, Bailout: 1e3}

	prev := math.Inf(1)
	for _, re := range []float64{0.26, 0.3, 0.5, 1, 2} {
		o := e.Mandelbrot(geometry.FromReal(re))
		require.True(t, o.Escaped, "c=%v", re)

		s := o.Smooth(2)
		assert.False(t, math.IsNaN(s))
		assert.LessOrEqual(t, s, prev, "smooth count should fall as c moves away from the set")
		prev = s
	}
}
