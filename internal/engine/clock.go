package engine

import "time"

// WallClock is a core.Clock backed by the monotonic system clock.
type WallClock struct {
	now  func() time.Time
	last time.Time
}

// NewWallClock starts measuring from now.
func NewWallClock() *WallClock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *WallClock {
	return &WallClock{now: now, last: now()}
}

// Elapsed returns seconds since the previous call (or since creation).
func (c *WallClock) Elapsed() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}
