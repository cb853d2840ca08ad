package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and tick rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Won      bool // Whether the round was cleared
	GameOver bool // Whether the game has ended (won or lost)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Err is set when the simulation hit an unrecoverable fault
	// (for example a maze the agents can walk out of). The platform
	// must stop the game loop when it is non-nil.
	Err error
}
