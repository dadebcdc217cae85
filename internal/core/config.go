package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The arena is measured in pixels; the terminal frontend scales it to cells.
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

// TickInterval returns the duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the externally visible state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended (won or lost)
	Won      bool // Whether the round ended with every brick destroyed
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
