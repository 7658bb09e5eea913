package core

import (
	"errors"
	"fmt"
)

// RuntimeConfig is the session configuration parsed once at startup.
// Screen dimensions are in world pixels, not terminal cells.
type RuntimeConfig struct {
	ScreenW      int     // Play area width in pixels
	ScreenH      int     // Play area height in pixels
	TickRate     int     // Simulation ticks per second
	Seed         int64   // RNG seed, 0 means time-based in the platform layer
	InitialSpeed float64 // Starting game speed in px/s
	Difficulty   float64 // Multiplier applied to speed and its ramp
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      1200,
		ScreenH:      800,
		TickRate:     60,
		Seed:         0,
		InitialSpeed: 400,
		Difficulty:   1.0,
	}
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate rejects configurations the simulation cannot run with.
func (c RuntimeConfig) Validate() error {
	switch {
	case c.ScreenW <= 0 || c.ScreenH <= 0:
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.ScreenW, c.ScreenH)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidConfig, c.TickRate)
	case c.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial speed %g must be positive", ErrInvalidConfig, c.InitialSpeed)
	case c.Difficulty <= 0:
		return fmt.Errorf("%w: difficulty %g must be positive", ErrInvalidConfig, c.Difficulty)
	}
	return nil
}

// GameState is the externally visible session state.
// Returned by the game to communicate status to the platform.
type GameState struct {
	Score    int     // Obstacles passed
	Lives    int     // Lives left
	Speed    float64 // Current game speed in px/s
	MaxSpeed float64 // Highest speed reached this session
	Elapsed  float64 // Seconds of unpaused play
	GameOver bool
	Paused   bool
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State  GameState
	Events []SoundEvent // Sound events fired during the tick, in order
}
