package config

// DifficultyManager computes the score-driven difficulty ramp.
// The ramp is stepwise: every SpeedIncreaseInterval points the game speeds
// up by a fixed step and the spawn interval shrinks toward its floor.
type DifficultyManager struct {
	cfg        DifficultyConfig
	multiplier float64
}

// NewDifficultyManager creates a new difficulty manager.
// The multiplier scales the speed step; non-positive values mean 1.
func NewDifficultyManager(cfg DifficultyConfig, multiplier float64) *DifficultyManager {
	if multiplier <= 0 {
		multiplier = 1
	}
	return &DifficultyManager{
		cfg:        cfg,
		multiplier: multiplier,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.SpeedIncreaseInterval > 0
}

// ShouldRamp reports whether reaching score triggers a ramp step.
// Score grows one point at a time, so this fires exactly once per multiple.
func (d *DifficultyManager) ShouldRamp(score int) bool {
	if !d.IsEnabled() || score <= 0 {
		return false
	}
	return score%d.cfg.SpeedIncreaseInterval == 0
}

// Speed returns the game speed after one ramp step.
func (d *DifficultyManager) Speed(current float64) float64 {
	return current + d.cfg.SpeedStep*d.multiplier
}

// Interval returns the spawn interval after one ramp step, floored at
// MinInterval. An interval already below the floor is left alone.
func (d *DifficultyManager) Interval(current float64) float64 {
	if current <= d.cfg.MinInterval {
		return current
	}
	return max(current-d.cfg.IntervalStep, d.cfg.MinInterval)
}

// Level returns how many ramp steps the score has earned, for the HUD.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || score <= 0 {
		return 0
	}
	return score / d.cfg.SpeedIncreaseInterval
}
