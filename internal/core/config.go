package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// ViewportW and ViewportH define the base coordinate space of the
	// simulation. Zero means "use the game's configured viewport".
	ViewportW float64
	ViewportH float64

	// Constrained marks small displays (narrow terminals, phone-sized
	// windows). Games may lower their base speed on such viewports.
	Constrained bool

	// Difficulty names a preset for this run ("easy", "hard", ...).
	// Empty keeps the game's configured difficulty.
	Difficulty string
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

// TickDuration returns the nominal duration of one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Set by drivers that own pause; games leave it false

	Stats RunStats // Per-session counters, saved with the final score
}

// RunStats holds counters accumulated during one session.
type RunStats struct {
	Frames  int
	Coins   int
	Stomps  int
	Shots   int // Enemies destroyed by player projectiles
	Pickups int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
}
