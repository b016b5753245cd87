package main

import (
	"context"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/geometry"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

type options struct {
	config.Render

	CReal, CImaginary float64
	N                 uint
	ViewHeight        float64
}

func mainCmd(cfg config.Render) *cobra.Command {
	opts := &options{
		Render:     cfg,
		CReal:      0.7,
		CImaginary: 0.42,
		N:          6,
		ViewHeight: 2.25,
	}

	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render the Julia set of z^N + C",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	config.BindFlags(cmd.Flags(), &opts.Render)
	cmd.Flags().Float64Var(&opts.CReal, "c-real", opts.CReal, "real part of C")
	cmd.Flags().Float64Var(&opts.CImaginary, "c-imaginary", opts.CImaginary, "imaginary part of C")
	cmd.Flags().UintVar(&opts.N, "n", opts.N, "exponent N, at least 2")
	cmd.Flags().Float64Var(&opts.ViewHeight, "view-height", opts.ViewHeight, "height of the view in the complex plane")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := log.New(cmd.ErrOrStderr(), "julia: ", log.LstdFlags)

	j := transforms.JuliaN{N: max(opts.N, 2), C: geometry.New(opts.CReal, opts.CImaginary)}

	sampler := render.Sampler{
		View: render.Viewport{
			Center: geometry.Zero,
			Span:   opts.ViewHeight,
			Width:  opts.Width,
			Height: opts.Height,
		},
		SubPixels: opts.SubPixels,
		Workers:   opts.Workers,
		Seed:      int64(time.Now().Second()),
	}
	escape := render.Escape{MaxIterations: opts.MaxIterations, Bailout: opts.Bailout}

	brightness, err := sampler.Average(cmd.Context(), func(z geometry.Complex) float64 {
		return render.SmoothValue(escape.Julia(j, z), float64(j.N))
	})
	if err != nil {
		return err
	}

	render.Normalize(brightness)
	img := render.RGBA64(brightness, opts.Width, opts.Height, func(b float64) color.RGBA64 {
		return render.Tint(render.LightBlue, b)
	})

	path := render.TimestampPath(opts.OutDir, time.Now())
	if err := render.WritePNG(path, img); err != nil {
		return err
	}
	logger.Printf("wrote %s for %v", path, j.C)

	return nil
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		config.Exitf("julia: %v", err)
	}

	ctx := context.Background()

	err = mainCmd(cfg).ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
