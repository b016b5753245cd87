package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/mandelbrot/pkg/config"
)

func TestBindFlags(t *testing.T) {
	r := config.Render{Width: 100, Height: 50, MaxIterations: 10, SubPixels: 2, Bailout: 2, OutDir: "out"}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs, &r)

	require.NoError(t, fs.Parse([]string{"--width=640", "--bailout=8", "--out", "renders"}))

	assert.Equal(t, config.Render{
		Width:         640,
		Height:        50,
		MaxIterations: 10,
		SubPixels:     2,
		Bailout:       8,
		OutDir:        "renders",
	}, r)
}
