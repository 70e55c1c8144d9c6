package render

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap maps [0, 1] onto a sequence of evenly spaced color stops,
// interpolating between neighbours in CIE L*a*b*.
type Colormap struct {
	stops []colorful.Color
}

// NewColormap parses hex stops such as "#ffffd9".
func NewColormap(hexes ...string) (*Colormap, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("render: colormap needs at least one stop")
	}
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("render: colormap stop %d: %w", i, err)
		}
		stops[i] = c
	}
	return &Colormap{stops: stops}, nil
}

func mustColormap(hexes ...string) *Colormap {
	cm, err := NewColormap(hexes...)
	if err != nil {
		panic(err)
	}
	return cm
}

// YlGnBu is the yellow-green-blue sequential map.
var YlGnBu = mustColormap(
	"#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4",
	"#1d91c0", "#225ea8", "#253494", "#081d58",
)

// At returns the color at t, clamped to [0, 1].
func (cm *Colormap) At(t float64) colorful.Color {
	if math.IsNaN(t) || t <= 0 {
		return cm.stops[0]
	}
	last := len(cm.stops) - 1
	if t >= 1 || last == 0 {
		return cm.stops[last]
	}

	pos := t * float64(last)
	i := int(pos)
	return cm.stops[i].BlendLab(cm.stops[i+1], pos-float64(i)).Clamped()
}

// NRGBA returns the color at t with the given opacity in [0, 1].
func (cm *Colormap) NRGBA(t, alpha float64) color.NRGBA {
	r, g, b := cm.At(t).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)}
}

func alphaByte(alpha float64) uint8 {
	switch {
	case math.IsNaN(alpha) || alpha <= 0:
		return 0
	case alpha >= 1:
		return 255
	}
	return uint8(alpha*255 + 0.5)
}
