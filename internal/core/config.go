package core

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic gameplay; 0 picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with a time-based seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{}
}

// GameState is the summary a session reports to the shell after each move.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known to the session
	GameOver bool // Whether the game has ended
	Won      bool // Whether the win tile has been reached this game
}
