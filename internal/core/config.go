package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Platforms fill it from CLI flags; the game uses it for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Platform surface width (cells for terminals, pixels for windows)
	ScreenH  int   // Platform surface height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for platforms and session bookkeeping.
type GameState struct {
	Score     int  // Score of the current run
	HighScore int  // Best score seen during this process
	GameOver  bool // Whether the current run has ended
}
