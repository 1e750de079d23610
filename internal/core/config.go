package core

import "time"

// DefaultTickInterval is the cadence at which the shell advances the
// simulation. It is a pacing knob, not a correctness parameter.
const DefaultTickInterval = 150 * time.Millisecond

// RuntimeConfig contains configuration the shell hands to a game session.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between simulation ticks
	Seed         int64         // RNG seed, 0 means "pick one from the clock"
	Layout       LayoutParams  // Grid derivation parameters for this surface
}

// DefaultConfig returns a RuntimeConfig with sensible terminal defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0,
		Layout:       TerminalLayoutParams(),
	}
}
