package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed handed to the level builder

	FrameLimit bool // Whether frames are paced at TickRate
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer

		FrameLimit: true,
	}
}

// GameState represents the current state of a scene.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Frames    uint64  // Simulated frames so far
	SimTime   float64 // Simulated seconds so far
	Paused    bool    // Whether the simulation is paused
	ShowDebug bool    // Whether the debug overlay is visible
	FpsLimit  bool    // Whether frame pacing is on
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State   GameState
	Skipped bool // The frame carried no usable delta and was not simulated
}
