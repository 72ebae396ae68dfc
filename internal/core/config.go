package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the playing field and seed its RNG.
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

// TickSeconds returns the nominal length of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int           // Current score
	Obstacles int           // Obstacles on the field
	Elapsed   time.Duration // Simulated time of the current run
	GameOver  bool          // Whether the game has ended
	Paused    bool          // Whether the game is paused
	TooSmall  bool          // Whether the screen cannot hold a playing field
}

// StepResult is returned by Game.Step() after each simulation tick.
// Ended is set only on the tick the game finished.
type StepResult struct {
	State GameState
	Ended bool
}
