package core

// RuntimeConfig is passed to the game at initialization. The seed makes
// a whole session reproducible: spawn timing is the only randomness.
type RuntimeConfig struct {
	ScreenW  int   // screen width in cells
	ScreenH  int   // screen height in cells
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing status summary of the game.
type GameState struct {
	Score       int
	HighScore   int
	Level       int
	SlotsFilled int
	GameOver    bool
	Paused      bool
}

// StepResult is returned by the game after each simulation tick.
type StepResult struct {
	State GameState
}
