package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.moti/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files only need to contain the keys they override; everything else keeps
// its default value.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner decodes YAML on top of the hardcoded defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".moti", "configs", filename)
}

// Validate reports values the simulation cannot work with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %g", c.Physics.Gravity))
	}
	if c.Physics.JumpForce >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_force must be negative, got %g", c.Physics.JumpForce))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Obstacles.Interval <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.interval must be positive, got %g", c.Obstacles.Interval))
	}
	if c.Obstacles.FlyingChance < 0 || c.Obstacles.FlyingChance > 1 {
		errs = append(errs, fmt.Errorf("obstacles.flying_chance must be within [0, 1], got %g", c.Obstacles.FlyingChance))
	}
	g := c.Obstacles.Ground
	if g.MinWidth <= 0 || g.MinWidth > g.MaxWidth || g.MinHeight <= 0 || g.MinHeight > g.MaxHeight {
		errs = append(errs, errors.New("obstacles.ground size range is invalid"))
	}
	f := c.Obstacles.Flying
	if f.Width <= 0 || f.Height <= 0 || f.MinAltitude > f.MaxAltitude {
		errs = append(errs, errors.New("obstacles.flying shape is invalid"))
	}
	if c.Session.Lives <= 0 {
		errs = append(errs, fmt.Errorf("session.lives must be positive, got %d", c.Session.Lives))
	}
	if c.Session.FrameDuration <= 0 || c.Session.BlinkInterval <= 0 {
		errs = append(errs, errors.New("session timers must be positive"))
	}
	if c.Difficulty.MinInterval <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.min_interval must be positive, got %g", c.Difficulty.MinInterval))
	}
	if c.Decor.MinWidth > c.Decor.MaxWidth || c.Decor.MinY > c.Decor.MaxY || c.Decor.MinSpeed > c.Decor.MaxSpeed {
		errs = append(errs, errors.New("decor ranges are invalid"))
	}
	return errors.Join(errs...)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else if preset != "" {
		cfg.Difficulty.Enabled = true
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Session.Invulnerability = 1.5
		cfg.Obstacles.FlyingChance = 0.25
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Session.Invulnerability = 0.75
		cfg.Obstacles.Interval = 1.25
	}
}
