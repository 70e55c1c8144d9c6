package analysis

import (
	"math"

	"github.com/san-kum/bifurc/internal/logistic"
)

// LyapunovExponent estimates the Lyapunov exponent of the logistic map at r
// as the orbit average of ln|f'(x)| = ln|r(1-2x)| over samples iterates
// taken after nTimes transient iterations. A positive value indicates chaos.
//
// A superstable orbit passes through x = 0.5 and yields -Inf.
func LyapunovExponent(r, xIn float64, nTimes, samples int) float64 {
	if samples <= 0 {
		return 0
	}

	x := logistic.Advance(nTimes, r, xIn)
	sum := 0.0
	for i := 0; i < samples; i++ {
		sum += math.Log(math.Abs(r * (1 - 2*x)))
		x = logistic.Step(r, x)
	}
	return sum / float64(samples)
}

// LyapunovSpectrum evaluates LyapunovExponent for every r value, restarting
// from xIn each time.
func LyapunovSpectrum(rVals []float64, xIn float64, nTimes, samples int) []float64 {
	out := make([]float64, len(rVals))
	for j, r := range rVals {
		out[j] = LyapunovExponent(r, xIn, nTimes, samples)
	}
	return out
}
