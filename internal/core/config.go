package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Frames per second driven by the platform (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Optional path to a game YAML config
	Variant    string // Optional game-specific variant (e.g. snake board preset)
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

// FramesPer converts a wall-clock interval in milliseconds into a number of
// platform frames at the configured tick rate. Never returns less than 1.
func (c RuntimeConfig) FramesPer(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return Max(1, ms*rate/1000)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (lost or won)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	// Events carries game-specific notices produced during this frame
	// (e.g. "ate", "collided"). The platform logs and traces them.
	Events []string
}
