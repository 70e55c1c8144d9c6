package analysis

// PhasePoint is one (x_n, x_{n+lag}) pair of a return map.
type PhasePoint struct {
	X, Y float64
}

// ReturnMap pairs every sample of orbit with the one lag steps later. For
// lag 1 the points of a logistic orbit lie on the parabola y = r*x*(1-x); a
// period-p cycle collapses to p points for lag p.
func ReturnMap(orbit []float64, lag int) []PhasePoint {
	if lag <= 0 || lag >= len(orbit) {
		return nil
	}
	points := make([]PhasePoint, len(orbit)-lag)
	for i := range points {
		points[i] = PhasePoint{X: orbit[i], Y: orbit[i+lag]}
	}
	return points
}
