// Package rendertest provides a core.Drawer that records quads for tests.
package rendertest

import "github.com/vovakirdan/chad-snake/internal/core"

// Quad is one recorded DrawQuad call.
type Quad struct {
	X, Y   float64
	SX, SY float64
	Color  core.Color
}

// Recorder captures every quad drawn into it.
type Recorder struct {
	Quads []Quad
}

// DrawQuad implements core.Drawer.
func (r *Recorder) DrawQuad(offsetX, offsetY, scaleX, scaleY float64, c core.Color) {
	r.Quads = append(r.Quads, Quad{X: offsetX, Y: offsetY, SX: scaleX, SY: scaleY, Color: c})
}

// Reset drops all recorded quads.
func (r *Recorder) Reset() {
	r.Quads = r.Quads[:0]
}

// Len returns the number of recorded quads.
func (r *Recorder) Len() int {
	return len(r.Quads)
}

// CountColor returns how many quads used exactly c.
func (r *Recorder) CountColor(c core.Color) int {
	n := 0
	for _, q := range r.Quads {
		if q.Color == c {
			n++
		}
	}
	return n
}

// WithColor returns the quads drawn in exactly c, in draw order.
func (r *Recorder) WithColor(c core.Color) []Quad {
	var out []Quad
	for _, q := range r.Quads {
		if q.Color == c {
			out = append(out, q)
		}
	}
	return out
}
