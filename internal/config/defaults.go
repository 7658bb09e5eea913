package config

import (
	_ "embed"

	"github.com/vovakirdan/moti-runner/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration.
// It mirrors defaults/runner.yaml and is the last fallback of LoadRunner.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: Physics{
			Gravity:   1800,
			JumpForce: -1000,
		},
		Player: Player{
			X:            100,
			Width:        80,
			Height:       80,
			GroundOffset: 100,
			Hitbox:       core.Inset{DW: -20, DH: -30, DY: 15},
			Color:        "bright_green",
			RunFrames:    2,
			JumpFrames:   1,
		},
		Obstacles: Obstacles{
			Interval:     1.5,
			FlyingChance: 0.40,
			Flying: FlyingShape{
				Width:       60,
				Height:      40,
				MinAltitude: 200,
				MaxAltitude: 250,
				Frames:      2,
			},
			Ground: GroundShape{
				MinWidth:  170,
				MaxWidth:  200,
				MinHeight: 170,
				MaxHeight: 200,
				Sink:      10,
			},
			FlyingHitbox: core.Inset{DW: -25, DH: -25},
			GroundHitbox: core.Inset{DW: -30, DH: -20, DY: 15},
			Colors: ObstacleTint{
				Flying: "white",
				Ground: "brown",
			},
		},
		Session: Session{
			Lives:           3,
			Invulnerability: 1.0,
			BlinkInterval:   0.1,
			FrameDuration:   0.15,
		},
		Difficulty: DifficultyConfig{
			Enabled:               true,
			SpeedIncreaseInterval: 5,
			SpeedStep:             50,
			IntervalStep:          0.05,
			MinInterval:           1.0,
		},
		Decor: Decor{
			Clouds:    4,
			Interval:  3.0,
			MinSpeed:  30,
			MaxSpeed:  80,
			MinY:      40,
			MaxY:      300,
			MinWidth:  90,
			MaxWidth:  180,
			Height:    40,
			MaxClouds: 8,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.5,
			Cues:    []string{"jump", "collision", "score", "game_over", "pause", "resume", "button"},
			Bell:    []string{"collision", "game_over"},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `moti config`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
