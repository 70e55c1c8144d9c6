package viz

import (
	"strings"
)

const brailleBlank = 0x2800

// Braille cells hold 2x4 dots. Dot bits by sub-pixel (row, col):
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille characters addressed in sub-pixels. A canvas
// of Width x Height cells has (Width*2) x (Height*4) sub-pixels with (0, 0)
// in the top left corner.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	dots          int
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// PixelWidth is the horizontal sub-pixel resolution.
func (c *Canvas) PixelWidth() int { return c.Width * 2 }

// PixelHeight is the vertical sub-pixel resolution.
func (c *Canvas) PixelHeight() int { return c.Height * 4 }

// Set turns on the sub-pixel at (x, y). Out of range coordinates are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.PixelWidth() || y >= c.PixelHeight() {
		return
	}

	cell := &c.Grid[y/4][x/2]
	bit := dotBits[y%4][x%2]
	if *cell&bit == 0 {
		*cell |= bit
		c.dots++
	}
}

// Dots reports how many distinct sub-pixels are set.
func (c *Canvas) Dots() int { return c.dots }

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	c.dots = 0
}

// Lines returns one string per character row.
func (c *Canvas) Lines() []string {
	lines := make([]string, len(c.Grid))
	for i, row := range c.Grid {
		lines[i] = string(row)
	}
	return lines
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, line := range c.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
