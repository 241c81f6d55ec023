package core

// Drawer draws one unit quad centered at (offsetX, offsetY), scaled by
// (scaleX, scaleY), in a flat color. Coordinates are normalized device
// coordinates: [-1,1] on both axes, y up. Every call is independent and
// immediate; callers re-issue the whole scene each frame.
type Drawer interface {
	DrawQuad(offsetX, offsetY, scaleX, scaleY float64, c Color)
}

// Clock reports seconds elapsed since its previous call.
type Clock interface {
	Elapsed() float64
}
