package main

import (
	"context"
	"errors"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/geometry"
	"github.com/willbeason/mandelbrot/pkg/render"
)

type options struct {
	config.Render

	CenterReal, CenterImaginary float64
	ViewHeight                  float64
	Seed                        int64
}

func mainCmd(cfg config.Render) *cobra.Command {
	opts := &options{
		Render:     cfg,
		CenterReal: -0.75,
		ViewHeight: 2.5,
	}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set with smooth escape-time colouring",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	config.BindFlags(cmd.Flags(), &opts.Render)
	cmd.Flags().Float64Var(&opts.CenterReal, "center-real", opts.CenterReal, "real part of the view center")
	cmd.Flags().Float64Var(&opts.CenterImaginary, "center-imaginary", opts.CenterImaginary, "imaginary part of the view center")
	cmd.Flags().Float64Var(&opts.ViewHeight, "view-height", opts.ViewHeight, "height of the view in the complex plane")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "jitter seed; 0 picks one from the clock")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if !(opts.ViewHeight > 0) {
		return errors.New("view height must be positive")
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := log.New(cmd.ErrOrStderr(), "mandelbrot: ", log.LstdFlags)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sampler := render.Sampler{
		View: render.Viewport{
			Center: geometry.New(opts.CenterReal, opts.CenterImaginary),
			Span:   opts.ViewHeight,
			Width:  opts.Width,
			Height: opts.Height,
		},
		SubPixels: opts.SubPixels,
		Workers:   opts.Workers,
		Seed:      seed,
	}
	escape := render.Escape{MaxIterations: opts.MaxIterations, Bailout: opts.Bailout}

	start := time.Now()
	brightness, err := sampler.Average(cmd.Context(), func(c geometry.Complex) float64 {
		return render.SmoothValue(escape.Mandelbrot(c), 2)
	})
	if err != nil {
		return err
	}
	logger.Printf("rendered %dx%d with %d subpixels in %s", opts.Width, opts.Height, opts.SubPixels, time.Since(start))

	render.Normalize(brightness)
	img := render.RGBA64(brightness, opts.Width, opts.Height, func(b float64) color.RGBA64 {
		return render.Tint(render.LightBlue, b)
	})

	path := render.TimestampPath(opts.OutDir, time.Now())
	if err := render.WritePNG(path, img); err != nil {
		return err
	}
	logger.Printf("wrote %s", path)

	return nil
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		config.Exitf("mandelbrot: %v", err)
	}

	ctx := context.Background()

	err = mainCmd(cfg).ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
