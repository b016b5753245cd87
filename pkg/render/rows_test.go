package render_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/mandelbrot/pkg/render"
)

func TestRows_VisitsEveryRowOnce(t *testing.T) {
	const height = 97

	var mu sync.Mutex
	seen := make(map[int]int)

	err := render.Rows(context.Background(), height, 4, func(_ context.Context, y int) error {
		mu.Lock()
		defer mu.Unlock()
		seen[y]++
		return nil
	})
	require.NoError(t, err)

	require.Len(t, seen, height)
	for y := 0; y < height; y++ {
		assert.Equal(t, 1, seen[y], "row %d", y)
	}
}

func TestRows_DefaultWorkers(t *testing.T) {
	rows := make([]bool, 10)
	err := render.Rows(context.Background(), len(rows), 0, func(_ context.Context, y int) error {
		rows[y] = true
		return nil
	})
	require.NoError(t, err)

	for y, done := range rows {
		assert.True(t, done, "row %d", y)
	}
}

func TestRows_Error(t *testing.T) {
	errBoom := errors.New("boom")

	err := render.Rows(context.Background(), 1000, 2, func(_ context.Context, y int) error {
		if y == 3 {
			return errBoom
		}
		return nil
	})
	require.ErrorIs(t, err, errBoom)
}

func TestRows_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := render.Rows(ctx, 1000, 2, func(ctx context.Context, _ int) error {
		return ctx.Err()
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestReduce(t *testing.T) {
	in := make(chan map[int]float64, 3)
	in <- map[int]float64{0: 1, 2: 0.5}
	in <- map[int]float64{2: 0.25, -1: 9, 3: 9}
	in <- map[int]float64{}
	close(in)

	out := make([]float64, 3)
	render.Reduce(in, out)

	assert.Equal(t, []float64{1, 0, 0.75}, out)
}
