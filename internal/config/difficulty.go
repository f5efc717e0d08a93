package config

import "math"

// DifficultyManager derives spawn parameters from the difficulty level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetLevel overrides the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetLevel(level float64) {
	d.cfg.Level = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables speed scaling.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// Level returns the effective difficulty level. A disabled manager is
// always at level zero.
func (d *DifficultyManager) Level() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return clampF(d.cfg.Level, 0.0, 1.0)
}

// Factor returns the multiplier applied to hazard speeds.
func (d *DifficultyManager) Factor() float64 {
	return 1.0 + d.Level()*d.cfg.SpeedMultiplier
}

// Speed scales a base speed by the current difficulty factor.
func (d *DifficultyManager) Speed(base float64) float64 {
	return base * d.Factor()
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
