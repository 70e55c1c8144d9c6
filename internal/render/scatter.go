package render

import (
	"image/color"
	"math"

	"github.com/san-kum/bifurc/internal/analysis"
)

// Point is one marker of a scatter plot.
type Point struct {
	X, Y  float64
	Color color.NRGBA
}

// Scatter is a set of points together with the axis ranges to draw them in.
// Points outside the ranges are clipped.
type Scatter struct {
	Points     []Point
	XMin, XMax float64
	YMin, YMax float64
}

// FromMatrix turns a sweep into a scatter plot: every sample in column j is
// drawn at x = rVals[j]. Colors run from 0.2 to 1 along cmap over the column
// index, all with the same opacity. Non-finite samples are dropped. The y
// axis is fixed to [0, 1], the x axis spans the r values.
func FromMatrix(rVals []float64, m *analysis.Matrix, cmap *Colormap, alpha float64) Scatter {
	s := Scatter{YMin: 0, YMax: 1}
	if len(rVals) == 0 {
		s.XMin, s.XMax = 0, 1
		return s
	}

	s.XMin, s.XMax = rVals[0], rVals[0]
	for _, r := range rVals {
		s.XMin = math.Min(s.XMin, r)
		s.XMax = math.Max(s.XMax, r)
	}

	s.Points = make([]Point, 0, m.Rows()*m.Cols())
	last := float64(len(rVals) - 1)
	for j, r := range rVals {
		t := 0.2
		if last > 0 {
			t += 0.8 * float64(j) / last
		}
		c := cmap.NRGBA(t, alpha)

		for _, y := range m.Column(j) {
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			s.Points = append(s.Points, Point{X: r, Y: y, Color: c})
		}
	}
	return s
}

// project maps p onto a w x h pixel grid with y growing downwards. A zero
// width axis range puts every point in the middle.
func (s Scatter) project(p Point, w, h int) (px, py int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return 0, 0, false
	}
	if p.X < s.XMin || p.X > s.XMax || p.Y < s.YMin || p.Y > s.YMax {
		return 0, 0, false
	}

	px = (w - 1) / 2
	if span := s.XMax - s.XMin; span > 0 {
		px = int((p.X-s.XMin)/span*float64(w-1) + 0.5)
	}
	py = (h - 1) / 2
	if span := s.YMax - s.YMin; span > 0 {
		py = h - 1 - int((p.Y-s.YMin)/span*float64(h-1)+0.5)
	}
	return px, py, true
}
