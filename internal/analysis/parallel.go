package analysis

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Options controls SweepParallel.
type Options struct {
	// Workers is the number of goroutines; <= 0 means runtime.NumCPU().
	Workers int

	// Progress, if set, is called after every finished column. It is called
	// from worker goroutines and must be safe for concurrent use.
	Progress func(done, total int)
}

// SweepParallel produces the same matrix as Sweep, splitting the columns
// into contiguous chunks with one scratch buffer per worker. The number of
// captured samples is stored.Rows().
//
// Cancellation is checked between columns. A cancelled sweep returns
// ctx.Err() and leaves stored partially written.
func SweepParallel(ctx context.Context, rVals []float64, xIn float64, nTimes int, stored *Matrix, opts Options) error {
	if nTimes < 0 {
		return ErrNegativeTransient
	}
	if stored == nil {
		return ErrNilMatrix
	}
	if err := checkShape(stored.Rows(), len(rVals), stored); err != nil {
		return err
	}

	n := len(rVals)
	if n == 0 {
		return nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	chunkSize := (n + workers - 1) / workers

	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			break
		}

		g.Go(func() error {
			stable := make([]float64, stored.Rows())
			for j := start; j < end; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				sweepColumn(rVals[j], xIn, nTimes, stable, stored, j)
				if opts.Progress != nil {
					opts.Progress(int(done.Add(1)), n)
				}
			}
			return nil
		})
	}

	return g.Wait()
}
