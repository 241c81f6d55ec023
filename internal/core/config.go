package core

// RuntimeConfig contains host parameters passed to the game at start-up.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (terminal columns or window pixels)
	ScreenH  int   // Host surface height (terminal rows or window pixels)
	TickRate int   // Frames per second for hosts that drive their own ticks
	Seed     int64 // RNG seed for fruit placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  800,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
