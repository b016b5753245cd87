package render

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Rows calls fn once for every row in [0, height), spread across workers
// goroutines. A workers value below one uses one per CPU. The first error
// returned by fn cancels the remaining rows and is returned.
func Rows(ctx context.Context, height, workers int, fn func(ctx context.Context, y int) error) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)

	yChannel := make(chan int)
	g.Go(func() error {
		defer close(yChannel)
		for y := 0; y < height; y++ {
			select {
			case yChannel <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for y := range yChannel {
				if err := fn(ctx, y); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// Reduce adds every sparse histogram received on in to out until in is
// closed. Keys outside out are ignored.
func Reduce[T int | float64](in <-chan map[int]T, out []T) {
	for m := range in {
		for k, v := range m {
			if k < 0 || k >= len(out) {
				continue
			}
			out[k] += v
		}
	}
}
