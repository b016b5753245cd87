package main

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/diffeq-go/pkg/solvers/order2"
)

func TestSection_ToPixel(t *testing.T) {
	s := newSection(160, 90)

	// Bounds map onto the image edges.
	assert.Equal(t, 0, s.toPixel(MaxY-1e-9, MinX+1e-9))
	assert.Equal(t, s.view.Index(159, 89), s.toPixel(MinY+1e-9, MaxX-1e-9))

	assert.Equal(t, s.view.Index(80, 45), s.toPixel((MinY+MaxY)*0.5-1e-9, (MinX+MaxX)*0.5+1e-9))

	assert.Equal(t, -1, s.toPixel(MaxY+1, 0))
	assert.Equal(t, -1, s.toPixel(2, MinX-1))
	assert.Equal(t, -1, s.toPixel(2, MaxX+1))
}

func TestWork_CountsEveryPeriod(t *testing.T) {
	s := newSection(160, 90)
	spring := duffing()
	out := make(chan map[int]int, 1)

	_, _, err := work(context.Background(), spring.Acceleration, order2.NewRungeKuttaSolver(order2.RK4()),
		s, 2, 0, 2*math.Pi/spring.Frequency, 20, rand.New(rand.NewSource(1)), out)
	require.NoError(t, err)

	total := 0
	for _, c := range <-out {
		total += c
	}
	assert.Equal(t, 20, total)
}

func TestWork_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newSection(160, 90)
	spring := duffing()
	out := make(chan map[int]int, 1)

	y, yp, err := work(ctx, spring.Acceleration, order2.NewRungeKuttaSolver(order2.RK4()),
		s, 2, 0, 2*math.Pi/spring.Frequency, 1e6, rand.New(rand.NewSource(1)), out)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, 0.0, yp)
	assert.Empty(t, out)
}
