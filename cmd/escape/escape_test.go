package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/mandelbrot/pkg/config"
)

func TestMainCmd_WritesImage(t *testing.T) {
	cfg := config.Render{
		Width:         24,
		Height:        16,
		MaxIterations: 40,
		SubPixels:     2,
		Bailout:       2,
		OutDir:        t.TempDir(),
		Workers:       2,
	}

	cmd := mainCmd(cfg)
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--max-iterations=30"})

	require.NoError(t, cmd.Execute())

	matches, err := filepath.Glob(filepath.Join(cfg.OutDir, "*.png"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	f, err := os.Open(matches[0])
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
	assert.Contains(t, stderr.String(), "wrote ")
}
