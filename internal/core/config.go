package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size, for deterministic simulation, and
// to reach the preference and audio boundaries without depending on their
// concrete implementations.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Prefs is the persistent key-value boundary (best scores, toggles).
	// May be nil; games must fall back to NopPrefs.
	Prefs PrefStore

	// Audio receives fire-and-forget tone cues. May be nil; games must
	// fall back to NopSink.
	Audio AudioSink
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

// PrefsOrNop returns the configured preference store, or NopPrefs when unset.
func (c RuntimeConfig) PrefsOrNop() PrefStore {
	if c.Prefs != nil {
		return c.Prefs
	}
	return NopPrefs{}
}

// AudioOrNop returns the configured audio sink, or NopSink when unset.
func (c RuntimeConfig) AudioOrNop() AudioSink {
	if c.Audio != nil {
		return c.Audio
	}
	return NopSink{}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}
