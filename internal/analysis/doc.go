// Package analysis sweeps the logistic map over a range of r and collects
// post-transient samples into a [Matrix].
//
//   - [Sweep]: serial sweep with a caller-owned scratch buffer
//   - [SweepParallel]: same output, columns split across goroutines
//   - [Run]: evenly spaced r range, allocation and timing in one call
//   - [Linspace]: r value provider
//
// # Layout
//
// Row i of the matrix is the i-th captured iterate, column j belongs to
// rVals[j]. Every column starts from the same seed, so columns are
// independent and a parallel sweep is bit-identical to a serial one:
//
//	rVals := analysis.Linspace(2.9, 4.0, 1000)
//	out := analysis.NewMatrix(3000, len(rVals))
//	err := analysis.SweepParallel(ctx, rVals, 0.01, 1_000_000, out, analysis.Options{})
//
// Diverging orbits are not an error: NaN and Inf are stored as computed.
package analysis
