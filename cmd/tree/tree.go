package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/geometry"
	"github.com/willbeason/mandelbrot/pkg/render"
	"github.com/willbeason/mandelbrot/pkg/transforms"
	"github.com/willbeason/mandelbrot/pkg/tree"
)

type options struct {
	config.Render

	Layers int
	Angle  float64
	Points int
	Seed   int64
}

func mainCmd(cfg config.Render) *cobra.Command {
	opts := &options{
		Render: cfg,
		Layers: 20,
		Angle:  0.6,
		Points: 1e7,
	}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render a symmetric tree fractal as a point density",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	config.BindFlags(cmd.Flags(), &opts.Render)
	cmd.Flags().IntVar(&opts.Layers, "layers", opts.Layers, "junction depth")
	cmd.Flags().Float64Var(&opts.Angle, "angle", opts.Angle, "branch angle in radians")
	cmd.Flags().IntVar(&opts.Points, "points", opts.Points, "number of points to sample")
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "random seed; 0 picks one from the clock")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := log.New(cmd.ErrOrStderr(), "tree: ", log.LstdFlags)

	seed := opts.Seed
	if seed == 0 {
		seed = int64(time.Now().Second())
	}
	r := rand.New(rand.NewSource(seed))

	// A straight trunk carries the symmetric crown.
	fractal := &tree.Tree{
		LeftP: 1.0,
		Left:  tree.Symmetric(opts.Layers, opts.Angle),
	}

	view := render.Viewport{
		Center: geometry.New(0.5, 2.5),
		Span:   6.0,
		Width:  opts.Width,
		Height: opts.Height,
	}
	logger.Printf("view from %v to %v", view.Point(0, 0), view.Point(float64(view.Width), float64(view.Height)))

	counts := make([]int, view.Width*view.Height)
	outside := 0
	tree.Walk(fractal, transforms.Identity, opts.Points, r, func(z geometry.Complex) {
		x, y, _, _, ok := view.Locate(z)
		if !ok || x < 0 || y < 0 {
			outside++
			return
		}
		counts[view.Index(x, y)]++
	})
	if outside > 0 {
		logger.Printf("%d of %d points fell outside the view", outside, opts.Points)
	}
	if outside == opts.Points {
		return errors.New("no points inside the view")
	}

	path := render.TimestampPath(opts.OutDir, time.Now())
	if err := render.WritePNG(path, render.Gray16(counts, view.Width, view.Height)); err != nil {
		return err
	}
	logger.Printf("wrote %s", path)

	return nil
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		config.Exitf("tree: %v", err)
	}

	ctx := context.Background()

	err = mainCmd(cfg).ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
