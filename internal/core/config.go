package core

import "time"

// RuntimeConfig contains what the host passes to the simulation at start.
// Viewport size and initial player health are the only gameplay inputs;
// everything else is tuning loaded by the config package.
type RuntimeConfig struct {
	ViewportW    float64       // Logical viewport width in world units
	ViewportH    float64       // Logical viewport height in world units
	TickPeriod   time.Duration // Fixed simulation step
	Seed         int64         // RNG seed for deterministic gameplay
	PlayerHealth int           // Initial player health, 0 keeps the tuned default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW:  1300,
		ViewportH:  750,
		TickPeriod: 40 * time.Millisecond,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// TickRate returns the number of ticks per second.
func (c RuntimeConfig) TickRate() int {
	if c.TickPeriod <= 0 {
		return 25
	}
	return int(time.Second / c.TickPeriod)
}

// GameState represents the current state of a run.
// Returned by State() to communicate status to the host.
type GameState struct {
	Level    string // Current level id
	Kills    int    // Kills in the current level
	Health   int    // Player health
	Tick     uint64 // Ticks simulated in the current level
	Paused   bool
	GameOver bool // Run ended, see Won
	Won      bool
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState

	// Transition holds the id of the level the host must switch to.
	// It is set on exactly one tick per level; the host performs the
	// switch after the tick has returned.
	Transition string
}
