package core

// RuntimeConfig contains configuration passed to the session at startup.
// Screen dimensions are terminal cells; the simulation itself runs in a
// fixed virtual pixel space and is projected onto the screen at render time.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic runs (0 = time-based)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
