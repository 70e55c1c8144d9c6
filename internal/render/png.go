package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

// Options control raster and vector output.
type Options struct {
	Width, Height int
	Background    color.NRGBA
	Axis          color.NRGBA
	// Margin is the gap in pixels between the image border and the plot
	// frame.
	Margin int
}

// DefaultOptions returns a white canvas with a black frame.
func DefaultOptions(width, height int) Options {
	margin := min(width, height) / 20
	return Options{
		Width:      width,
		Height:     height,
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Axis:       color.NRGBA{A: 255},
		Margin:     margin,
	}
}

func (o Options) plotArea() image.Rectangle {
	return image.Rect(o.Margin, o.Margin, o.Width-o.Margin, o.Height-o.Margin)
}

// Image rasterizes s. Each point covers one pixel and is composited over
// what is already there, so dense regions of the attractor get darker.
func Image(s Scatter, opts Options) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(opts.Width, 0), max(opts.Height, 0)))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)

	area := opts.plotArea()
	if area.Empty() {
		return img
	}

	for _, p := range s.Points {
		px, py, ok := s.project(p, area.Dx(), area.Dy())
		if !ok {
			continue
		}
		blend(img, area.Min.X+px, area.Min.Y+py, p.Color)
	}

	frame(img, area.Inset(-1), opts.Axis)
	return img
}

// PNG encodes the rasterized scatter plot to w.
func PNG(w io.Writer, s Scatter, opts Options) error {
	return png.Encode(w, Image(s, opts))
}

// blend composites c over the pixel at (x, y) with source-over.
func blend(img *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}.In(img.Rect)) || c.A == 0 {
		return
	}
	i := img.PixOffset(x, y)
	pix := img.Pix[i : i+4 : i+4]

	a := uint32(c.A)
	dstA := uint32(pix[3])
	outA := a + dstA*(255-a)/255
	if outA == 0 {
		return
	}
	mix := func(src, dst uint8) uint8 {
		v := (uint32(src)*a + uint32(dst)*dstA*(255-a)/255) / outA
		return uint8(min(v, 255))
	}
	pix[0] = mix(c.R, pix[0])
	pix[1] = mix(c.G, pix[1])
	pix[2] = mix(c.B, pix[2])
	pix[3] = uint8(outA)
}

func frame(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetNRGBA(x, r.Min.Y, c)
		img.SetNRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetNRGBA(r.Min.X, y, c)
		img.SetNRGBA(r.Max.X-1, y, c)
	}
}
