package core

// RuntimeConfig contains configuration passed from a shell to the game.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters, or window width in pixels
	ScreenH  int   // Terminal height in characters, or window height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay (0 = time based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}
