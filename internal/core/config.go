package core

// RuntimeConfig contains configuration passed to a game session at start.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Frames (ticks) per second
	Seed      int64 // RNG seed for deterministic gameplay
}

// Bounds returns the board size for the configured screen.
func (c RuntimeConfig) Bounds() Bounds {
	return Bounds{Width: c.ScreenW, Height: c.ScreenH}
}
