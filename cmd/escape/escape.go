package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/geometry"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/transforms"
)

const (
	// startSpan is the side of the square of starting points, centered on zero.
	startSpan = 8.0

	// Orbits which survive this long are treated as bounded and not drawn.
	bIterations = 100

	// gamma compresses the hit counts before colouring.
	gamma = 0.2
)

type options struct {
	config.Render

	CReal, CImaginary float64
	ViewHeight        float64
}

func mainCmd(cfg config.Render) *cobra.Command {
	opts := &options{
		Render:     cfg,
		CReal:      0.09,
		CImaginary: -0.575,
		ViewHeight: 1.2,
	}

	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render the density of escaping orbits of alternating z^5 + C and z^6 + C",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	config.BindFlags(cmd.Flags(), &opts.Render)
	cmd.Flags().Float64Var(&opts.CReal, "c-real", opts.CReal, "real part of C")
	cmd.Flags().Float64Var(&opts.CImaginary, "c-imaginary", opts.CImaginary, "imaginary part of C")
	cmd.Flags().Float64Var(&opts.ViewHeight, "view-height", opts.ViewHeight, "height of the view in the complex plane")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := log.New(cmd.ErrOrStderr(), "escape: ", log.LstdFlags)

	c := geometry.New(opts.CReal, opts.CImaginary)
	maps := transforms.Alternate{Maps: []transforms.Map{
		transforms.JuliaN{N: 5, C: c},
		transforms.JuliaN{N: 6, C: c},
	}}
	step := func(i int, z geometry.Complex) geometry.Complex {
		return maps.At(i).Next(z)
	}

	view := render.Viewport{
		Center: geometry.New(0, -opts.ViewHeight/2.0),
		Span:   opts.ViewHeight,
		Width:  opts.Width,
		Height: opts.Height,
	}
	// Starting points cover a wider square than is drawn.
	starts := render.Viewport{Center: geometry.Zero, Span: startSpan, Width: opts.Height, Height: opts.Height}
	escape := render.Escape{MaxIterations: opts.MaxIterations, Bailout: 10}

	paths := make(chan map[int]float64, 10000)
	frequencies := make([]float64, opts.Width*opts.Height)

	done := make(chan struct{})
	go func() {
		render.Reduce(paths, frequencies)
		close(done)
	}()

	seed := time.Now().UnixNano()
	err := render.Rows(cmd.Context(), starts.Height, opts.Workers, func(ctx context.Context, y int) error {
		rng := rand.New(rand.NewSource(seed + int64(y)))
		path := make([]geometry.Complex, opts.MaxIterations)

		for x := 0; x < starts.Width; x++ {
			p := make(map[int]float64)
			for s := 0; s < opts.SubPixels; s++ {
				// Slightly jitter points.
				z := starts.Point(float64(x)+rng.Float64(), float64(y)+rng.Float64())

				o := escape.Run(step, z, path)
				if o.Iterations >= bIterations {
					continue
				}

				for k, pz := range path[:o.Iterations] {
					view.Splat(pz, math.Min(0.1*float64(k), 1.0), p)
				}
			}

			select {
			case paths <- p:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	close(paths)
	<-done
	if err != nil {
		return err
	}

	for i, f := range frequencies {
		frequencies[i] = math.Pow(f, gamma)
	}

	maxHits := 0.0
	for _, h := range frequencies {
		maxHits = math.Max(h, maxHits)
	}
	if maxHits <= 0.0 {
		maxHits = 1.0
	}
	logger.Println("Max hits", maxHits)

	baseWeight := math.MaxUint16 * 2.5 / maxHits
	for i := range frequencies {
		frequencies[i] *= baseWeight
	}
	img := render.RGBA64(frequencies, opts.Width, opts.Height, render.Overflow)

	path := render.TimestampPath(opts.OutDir, time.Now())
	if err := render.WritePNG(path, img); err != nil {
		return fmt.Errorf("write density image: %w", err)
	}
	logger.Printf("wrote %s", path)

	return nil
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		config.Exitf("escape: %v", err)
	}

	ctx := context.Background()

	err = mainCmd(cfg).ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
