package tui

import (
	"math"

	"github.com/vovakirdan/chad-snake/internal/core"
)

// Canvas is a pixel buffer that rasterizes unit quads given in normalized
// device coordinates. Each terminal cell shows two vertically stacked pixels,
// so the height is kept even.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a canvas of width×height pixels.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions. Content is discarded; the next frame
// redraws everything anyway.
func (c *Canvas) Resize(width, height int) {
	width = max(width, 1)
	height = max(height, 2)
	if height%2 != 0 {
		height--
	}
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.pixels = make([]core.Color, width*height)
}

// Clear fills every pixel with col.
func (c *Canvas) Clear(col core.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// At returns the pixel at (x, y), row 0 at the top. Out-of-bounds reads
// return the zero color.
func (c *Canvas) At(x, y int) core.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return core.Color{}
	}
	return c.pixels[y*c.width+x]
}

// DrawQuad fills the pixels covered by the unit quad centered at
// (offsetX, offsetY) scaled by (scaleX, scaleY). A quad that covers less than
// a pixel still paints one so small glyph pixels stay visible.
func (c *Canvas) DrawQuad(offsetX, offsetY, scaleX, scaleY float64, col core.Color) {
	x0, x1 := c.span(offsetX-scaleX/2, offsetX+scaleX/2, c.width, false)
	y0, y1 := c.span(offsetY+scaleY/2, offsetY-scaleY/2, c.height, true)

	for y := max(y0, 0); y < min(y1, c.height); y++ {
		row := c.pixels[y*c.width : (y+1)*c.width]
		for x := max(x0, 0); x < min(x1, c.width); x++ {
			row[x] = col
		}
	}
}

// span converts an NDC interval to a half-open pixel range of at least one
// pixel. Flipped maps +1 to row 0.
func (c *Canvas) span(from, to float64, size int, flipped bool) (int, int) {
	toPixel := func(v float64) float64 {
		if flipped {
			v = -v
		}
		return (v + 1) / 2 * float64(size)
	}
	lo := int(math.Round(toPixel(from)))
	hi := int(math.Round(toPixel(to)))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
