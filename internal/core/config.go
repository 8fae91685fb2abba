package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Started  bool // First move has been made
	GameOver bool // Whether the game has ended (won, lost or abandoned)
	Won      bool // Whether the game ended in a win
}

// StepResult is returned by a game after it handled an input frame.
type StepResult struct {
	State GameState
	// Changed is false when the input had no visible effect, so the
	// platform may skip a redraw.
	Changed bool
}
