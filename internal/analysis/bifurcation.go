package analysis

import (
	"context"
	"time"

	"github.com/san-kum/bifurc/internal/logistic"
)

// Sweep computes the bifurcation diagram of the logistic map column by
// column. For every rVals[j] the state is reset to xIn, advanced nTimes
// iterations past the transient, and the next len(stable) iterates are
// captured into stable and copied into column j of stored.
//
// stored must be len(stable) x len(rVals). stable is scratch space and is
// overwritten for every column. Empty rVals or an empty stable buffer are
// valid and leave nothing to write.
func Sweep(rVals []float64, xIn float64, nTimes int, stable []float64, stored *Matrix) error {
	if nTimes < 0 {
		return ErrNegativeTransient
	}
	if err := checkShape(len(stable), len(rVals), stored); err != nil {
		return err
	}

	for j, r := range rVals {
		sweepColumn(r, xIn, nTimes, stable, stored, j)
	}
	return nil
}

// sweepColumn always starts from the caller's seed, never from the previous
// column's final state.
func sweepColumn(r, xIn float64, nTimes int, stable []float64, stored *Matrix, j int) {
	x := logistic.Advance(nTimes, r, xIn)
	logistic.Capture(stable, r, x)
	stored.SetColumn(j, stable)
}

// Linspace returns n evenly spaced values over [min, max], both ends
// included. n == 1 yields [min].
func Linspace(min, max float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = min
		return vals
	}

	step := (max - min) / float64(n-1)
	for i := range vals {
		vals[i] = min + float64(i)*step
	}
	vals[n-1] = max
	return vals
}

// Params describes a complete sweep over an evenly spaced r range.
type Params struct {
	RMin, RMax float64
	RSteps     int
	XIn        float64
	Transient  int
	Samples    int
	Workers    int
	Progress   func(done, total int)
}

// Result is a finished sweep.
type Result struct {
	RVals   []float64
	Outputs *Matrix
	Elapsed time.Duration
}

// Run builds the r values, allocates the output matrix and sweeps it in
// parallel.
func Run(ctx context.Context, p Params) (*Result, error) {
	if p.Samples < 0 || p.RSteps < 0 {
		return nil, &ShapeError{WantRows: p.Samples, WantCols: p.RSteps}
	}

	rVals := Linspace(p.RMin, p.RMax, p.RSteps)
	outputs := NewMatrix(p.Samples, len(rVals))

	start := time.Now()
	err := SweepParallel(ctx, rVals, p.XIn, p.Transient, outputs, Options{
		Workers:  p.Workers,
		Progress: p.Progress,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		RVals:   rVals,
		Outputs: outputs,
		Elapsed: time.Since(start),
	}, nil
}
