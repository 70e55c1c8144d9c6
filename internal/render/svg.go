package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// SVG writes s as an SVG document with one circle per point. Colors keep
// their alpha as fill-opacity so overlapping points build up density the
// same way the raster output does.
func SVG(w io.Writer, s Scatter, opts Options) error {
	bw := bufio.NewWriter(w)
	area := opts.plotArea()

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, hex(opts.Background))

	if !area.Empty() {
		fmt.Fprintf(bw, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="1"/>
<g stroke="none">
`, area.Min.X, area.Min.Y, area.Dx(), area.Dy(), hex(opts.Axis))

		for _, p := range s.Points {
			px, py, ok := s.project(p, area.Dx(), area.Dy())
			if !ok || p.Color.A == 0 {
				continue
			}
			fmt.Fprintf(bw, `<circle cx="%d" cy="%d" r="0.5" fill="%s" fill-opacity="%.3f"/>
`, area.Min.X+px, area.Min.Y+py, hex(p.Color), float64(p.Color.A)/255)
		}
		bw.WriteString("</g>\n")
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
