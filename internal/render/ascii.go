package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/bifurc/internal/viz"
)

// ASCII draws s on a braille canvas of width x height characters and frames
// it with the axis ranges. Colors are ignored. Returns "" for a
// non-positive size.
func ASCII(s Scatter, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	canvas := viz.NewCanvas(width, height)
	for _, p := range s.Points {
		px, py, ok := s.project(p, canvas.PixelWidth(), canvas.PixelHeight())
		if ok {
			canvas.Set(px, py)
		}
	}

	top := fmt.Sprintf("%6.2f ", s.YMax)
	mid := fmt.Sprintf("%6.2f ", (s.YMax+s.YMin)/2)
	bottom := fmt.Sprintf("%6.2f ", s.YMin)
	blank := strings.Repeat(" ", len(top))

	var b strings.Builder
	b.WriteString(top + "┌" + strings.Repeat("─", width) + "┐\n")
	for i, line := range canvas.Lines() {
		label := blank
		if i == height/2 {
			label = mid
		}
		b.WriteString(label + "│" + line + "│\n")
	}
	b.WriteString(bottom + "└" + strings.Repeat("─", width) + "┘\n")

	left := fmt.Sprintf("%.3f", s.XMin)
	right := fmt.Sprintf("%.3f", s.XMax)
	gap := max(width+2-len(left)-len(right), 1)
	b.WriteString(blank + left + strings.Repeat(" ", gap) + right + "\n")
	return b.String()
}
