package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for the shuffle
	Player   string // Display name, recorded with solves
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

// TicksFor converts a wall-clock duration into simulation ticks.
// Never returns less than 1.
func (c RuntimeConfig) TicksFor(d time.Duration) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticks := int(d * time.Duration(rate) / time.Second)
	if ticks < 1 {
		return 1
	}
	return ticks
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves     int    // Live moves on the board
	Solved    bool   // Board matches the target
	Won       bool   // A player move solved the board in this attempt
	Replaying bool   // A replay is running; solves seen now are re-announcements
	Paused    bool   // Game is paused or the window is too small
	Attempt   int    // Incremented on every restart
	Ticks     uint64 // Ticks spent in the current attempt
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
