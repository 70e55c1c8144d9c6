// Package logistic iterates the logistic map x -> r*x*(1-x).
//
// The functions here are the hot loops of a bifurcation sweep. They never
// allocate and never inspect their inputs: values outside [0, 1], negative r,
// NaN and Inf all flow through the same arithmetic.
//
//	x := logistic.Advance(1_000_000, 3.7, 0.01) // discard the transient
//	buf := make([]float64, 3000)
//	logistic.Capture(buf, 3.7, x)               // attractor samples
package logistic

// Step applies the map once.
func Step(r, x float64) float64 {
	return r * x * (1 - x)
}

// Advance applies the map nTimes times starting from xIn and returns the
// final state. nTimes <= 0 returns xIn unchanged.
func Advance(nTimes int, r, xIn float64) float64 {
	x := xIn
	for i := 0; i < nTimes; i++ {
		x = Step(r, x)
	}
	return x
}

// Capture fills buf with the next len(buf) iterates after xIn, feeding each
// output back in as the next input. buf[0] is Step(r, xIn). Prior contents of
// buf are never read.
func Capture(buf []float64, r, xIn float64) {
	x := xIn
	for i := range buf {
		x = Step(r, x)
		buf[i] = x
	}
}
