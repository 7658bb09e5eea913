// Package config provides YAML-based runner configuration loading and
// difficulty management.
package config

import "github.com/vovakirdan/moti-runner/internal/core"

// RunnerConfig contains all tunable parameters of the runner.
type RunnerConfig struct {
	Physics    Physics          `yaml:"physics"`
	Player     Player           `yaml:"player"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Session    Session          `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Decor      Decor            `yaml:"decor"`
	Audio      Audio            `yaml:"audio"`
}

// Physics defines the player's vertical motion.
type Physics struct {
	Gravity   float64 `yaml:"gravity"`    // px/s², positive = down
	JumpForce float64 `yaml:"jump_force"` // px/s, negative = up
}

// Player defines the player's size, placement and hitbox.
type Player struct {
	X            float64    `yaml:"x"`
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	GroundOffset float64    `yaml:"ground_offset"` // Distance from the bottom of the screen to the player's rest Y
	Hitbox       core.Inset `yaml:"hitbox"`
	Color        string     `yaml:"color"`
	RunFrames    int        `yaml:"run_frames"`
	JumpFrames   int        `yaml:"jump_frames"`
}

// Obstacles defines the spawner and both obstacle variants.
type Obstacles struct {
	Interval     float64      `yaml:"interval"`      // Seconds between spawns at the start
	FlyingChance float64      `yaml:"flying_chance"` // Probability of a flying obstacle
	Flying       FlyingShape  `yaml:"flying"`
	Ground       GroundShape  `yaml:"ground"`
	FlyingHitbox core.Inset   `yaml:"flying_hitbox"`
	GroundHitbox core.Inset   `yaml:"ground_hitbox"`
	Colors       ObstacleTint `yaml:"colors"`
}

// FlyingShape is the fixed box of a flying obstacle and its altitude band.
type FlyingShape struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinAltitude int     `yaml:"min_altitude"` // Pixels above the ground line
	MaxAltitude int     `yaml:"max_altitude"`
	Frames      int     `yaml:"frames"`
}

// GroundShape is the randomized size range of a ground obstacle.
type GroundShape struct {
	MinWidth  int     `yaml:"min_width"`
	MaxWidth  int     `yaml:"max_width"`
	MinHeight int     `yaml:"min_height"`
	MaxHeight int     `yaml:"max_height"`
	Sink      float64 `yaml:"sink"` // Pixels above the ground line the top edge starts at
}

// ObstacleTint names the colors of both obstacle variants.
type ObstacleTint struct {
	Flying string `yaml:"flying"`
	Ground string `yaml:"ground"`
}

// Session defines lives and timers owned by the session controller.
type Session struct {
	Lives           int     `yaml:"lives"`
	Invulnerability float64 `yaml:"invulnerability"` // Seconds of grace after a hit
	BlinkInterval   float64 `yaml:"blink_interval"`  // Seconds between visibility toggles while invulnerable
	FrameDuration   float64 `yaml:"frame_duration"`  // Seconds each animation frame is shown
}

// DifficultyConfig defines the score-driven difficulty ramp.
type DifficultyConfig struct {
	Enabled               bool    `yaml:"enabled"`
	SpeedIncreaseInterval int     `yaml:"speed_increase_interval"` // Score points between ramps
	SpeedStep             float64 `yaml:"speed_step"`              // px/s added per ramp
	IntervalStep          float64 `yaml:"interval_step"`           // Seconds removed from the spawn interval per ramp
	MinInterval           float64 `yaml:"min_interval"`            // Floor of the spawn interval
}

// Decor defines the parallax clouds.
type Decor struct {
	Clouds    int     `yaml:"clouds"`   // Clouds created at reset
	Interval  float64 `yaml:"interval"` // Seconds between new clouds
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	MinY      int     `yaml:"min_y"`
	MaxY      int     `yaml:"max_y"`
	MinWidth  int     `yaml:"min_width"`
	MaxWidth  int     `yaml:"max_width"`
	Height    float64 `yaml:"height"`
	MaxClouds int     `yaml:"max_clouds"`
}

// Audio defines the sound cues.
type Audio struct {
	Enabled bool     `yaml:"enabled"`
	Volume  float64  `yaml:"volume"` // 0.0 (silent) to 1.0
	Cues    []string `yaml:"cues"`   // Events that are audible at all
	Bell    []string `yaml:"bell"`   // Events that ring the terminal bell
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty or unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
