// Package core provides fundamental types and utilities for the game.
// It contains no platform dependencies (no Bubble Tea, no OpenGL) to keep
// game logic pure and testable.
package core

// Point is a cell address on the playfield grid.
// Values outside the grid are legal; the renderer uses them for the border ring.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether p lies inside [0,w)×[0,h).
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Direction is the snake's heading.
type Direction int

const (
	// DirNone means no movement has been requested yet.
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-cell offset for the direction.
// Up is +Y because grid rows map to NDC, where y grows upward.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Y: 1}
	case DirDown:
		return Point{Y: -1}
	case DirLeft:
		return Point{X: -1}
	case DirRight:
		return Point{X: 1}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
