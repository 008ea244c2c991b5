package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Players  int   // Number of local players (1 or 2)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Players:  1,
	}
}

// GameState represents the current state of a round.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int     // Current round score
	TimeRemaining float64 // Seconds left in the round
	RoundOver     bool    // Whether the round has ended
	Paused        bool    // Whether the round is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
