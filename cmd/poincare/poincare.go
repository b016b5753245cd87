package main

import (
	"context"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/diffeq-go/pkg/equations"
	"github.com/willbeason/diffeq-go/pkg/models"
	"github.com/willbeason/diffeq-go/pkg/solvers/order2"
	"golang.org/x/sync/errgroup"

	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/geometry"
	"github.com/willbeason/mandelbrot/pkg/render"
)

const (
	// Bounds of the drawn section: velocity runs horizontally, position vertically.
	MinX = -30
	MaxX = 30
	MinY = 0.2
	MaxY = 4

	StartCycles = 10000

	// Substeps is how many solver steps make up one forcing period.
	Substeps = 50

	// checkEvery is how many periods pass between cancellation checks.
	checkEvery = 1000
)

type options struct {
	config.Render

	Cycles int
}

// section draws phase points y + i·y' with velocity compressed so the
// section's bounds fill the image.
type section struct {
	view render.Viewport
	// squeeze shrinks velocities to match the viewport's square pixels.
	squeeze float64
}

func newSection(width, height int) section {
	span := MaxY - MinY
	return section{
		view: render.Viewport{
			Center: geometry.New(0, (MinY+MaxY)*0.5),
			Span:   span,
			Width:  width,
			Height: height,
		},
		squeeze: span * float64(width) / float64(height) / (MaxX - MinX),
	}
}

func (s section) point(y, yp float64) geometry.Complex {
	return geometry.New((yp-(MinX+MaxX)*0.5)*s.squeeze, y)
}

func (s section) toPixel(y, yp float64) int {
	x, py, _, _, ok := s.view.Locate(s.point(y, yp))
	if !ok || x < 0 || py < 0 {
		return -1
	}
	return s.view.Index(x, py)
}

// work advances n forcing periods from (y0, yp0), counting the pixel hit after
// each one. Counts are sent to out unless ctx is cancelled first.
func work(ctx context.Context, eq equations.SecondOrder, solver order2.Solver, s section, y0, yp0, h float64, n int, rng *rand.Rand, out chan<- map[int]int) (float64, float64, error) {
	y := y0
	yp := yp0

	// Dither by up to a pixel so the section does not alias onto the grid.
	dy := s.view.PixelSize()
	dyp := dy / s.squeeze

	result := make(map[int]int)
	for i := 0; i < n; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return y, yp, err
			}
		}

		y, yp = order2.Solve(solver, eq, 0.0, y, yp, h, Substeps)
		result[s.toPixel(y, yp)]++

		y += (-0.5 + rng.Float64()) * dy * 2
		yp += (-0.5 + rng.Float64()) * dyp * 2
	}

	if out != nil {
		select {
		case out <- result:
		case <-ctx.Done():
			return y, yp, ctx.Err()
		}
	}

	return y, yp, nil
}

func duffing() models.DuffingOscillator {
	return models.DuffingOscillator{
		Delta:     0.018,
		Alpha:     0.22,
		Beta:      3.3,
		Gamma:     32.657,
		Frequency: 2.03,
	}
}

func mainCmd(cfg config.Render) *cobra.Command {
	opts := &options{
		Render: cfg,
		Cycles: 1e6,
	}

	cmd := &cobra.Command{
		Use:   "poincare",
		Short: "Render the Poincaré section of a forced Duffing oscillator",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	config.BindFlags(cmd.Flags(), &opts.Render)
	cmd.Flags().IntVar(&opts.Cycles, "cycles", opts.Cycles, "forcing periods simulated per worker")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := log.New(cmd.ErrOrStderr(), "poincare: ", log.LstdFlags)

	spring := duffing()
	logger.Println("gamma", spring.Gamma)

	s := newSection(opts.Width, opts.Height)
	h := 2 * math.Pi / spring.Frequency

	nWorkers := opts.Workers
	if nWorkers < 1 {
		nWorkers = runtime.NumCPU()
	}

	results := make(chan map[int]int, nWorkers)
	counts := make([]int, opts.Width*opts.Height)
	done := make(chan struct{})
	go func() {
		render.Reduce(results, counts)
		close(done)
	}()

	g, ctx := errgroup.WithContext(cmd.Context())
	for i := 0; i < nWorkers; i++ {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(i)))
			y0 := (MinY+MaxY)*0.5 + 10*s.view.PixelSize()*rng.Float64()
			yp0 := (MinX+MaxX)*0.5 + 10*s.view.PixelSize()/s.squeeze*rng.Float64()

			rk4 := order2.NewRungeKuttaSolver(order2.RK4())
			// Let transients die out before recording.
			y0, yp0, err := work(ctx, spring.Acceleration, rk4, s, y0, yp0, h, StartCycles, rng, nil)
			if err != nil {
				return err
			}

			_, _, err = work(ctx, spring.Acceleration, rk4, s, y0, yp0, h, opts.Cycles, rng, results)
			return err
		})
	}

	err := g.Wait()
	close(results)
	<-done
	if err != nil {
		return err
	}

	img := render.RGBA64(render.Ranks(counts), opts.Width, opts.Height, render.Heat)

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
		config.Exitf("poincare: %v", err)
	}

	ctx := context.Background()

	err = mainCmd(cfg).ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
