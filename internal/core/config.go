package core

// RuntimeConfig contains configuration passed to the game by the platform.
// The world itself is measured in pixels and configured separately; this only
// describes the terminal surface and the simulation pacing.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState represents the current state of a session.
type GameState struct {
	Score     int  // Current score (meter distance)
	HighScore int  // Best score of this process, in meter units
	Playing   bool // Whether a run is in progress
	GameOver  bool // Whether the current run has crashed
	Paused    bool // Whether the game is paused
	Inverted  bool // Whether night mode is active
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State     GameState
	Sounds    []Sound // Sounds triggered this tick, in order
	Collision bool    // Whether the character hit an obstacle this tick
	Distance  float64 // Distance ran in world pixels
	Quit      bool    // Whether the player asked to quit
}
