package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultTiers returns the three gem tiers.
func DefaultTiers() []PickupTier {
	return []PickupTier{
		{Points: 5, Sprite: "gem-green"},
		{Points: 10, Sprite: "gem-blue"},
		{Points: 20, Sprite: "gem-gold"},
	}
}

// DefaultCrossingConfig returns the built-in configuration.
// It mirrors defaults/crossing.yaml and is used when the embedded file
// cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Canvas: CanvasConfig{
			Width:      505,
			Height:     606,
			TileWidth:  101,
			TileHeight: 83,
		},
		Player: PlayerConfig{
			StartX:   300,
			StartY:   390,
			StepX:    101,
			StepY:    83,
			Lives:    3,
			GoalLine: 10,
		},
		Hazards: HazardConfig{
			Count:      6,
			StartX:     -101,
			StartY:     55,
			LaneHeight: 83,
			MinSpeed:   80,
			SpeedRange: 300,
			Radius:     25,
		},
		Pickups: PickupConfig{
			MinCount: 1,
			MaxCount: 3,
			MinX:     10,
			RangeX:   400,
			MinY:     50,
			RangeY:   200,
			Radius:   55,
			Tiers:    DefaultTiers(),
		},
		Goal: GoalConfig{
			X:         1,
			Y:         375,
			Radius:    25,
			Threshold: 100,
			Bonus:     100,
		},
		Scoring: ScoringConfig{
			WinPoints:    10,
			DeathPenalty: 30,
		},
		Bounds: BoundsConfig{
			Player:  EdgeConfig{Left: -50, Top: -10, RightInset: 50, BottomInset: 170},
			Hazard:  EdgeConfig{Left: -9000, Top: -9000},
			Default: EdgeConfig{},
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			Level:           0.0,
			SpeedMultiplier: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `crossing config`
// style dumps or as a template for user overrides.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}

// Normalize replaces degenerate values with the nearest valid ones so a
// hand-edited config can never fail a session.
func (c *CrossingConfig) Normalize() {
	def := DefaultCrossingConfig()

	if c.Canvas.Width <= 0 {
		c.Canvas.Width = def.Canvas.Width
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = def.Canvas.Height
	}
	if c.Canvas.TileWidth <= 0 {
		c.Canvas.TileWidth = def.Canvas.TileWidth
	}
	if c.Canvas.TileHeight <= 0 {
		c.Canvas.TileHeight = def.Canvas.TileHeight
	}

	if c.Player.StepX <= 0 {
		c.Player.StepX = c.Canvas.TileWidth
	}
	if c.Player.StepY <= 0 {
		c.Player.StepY = c.Canvas.TileHeight
	}
	if c.Player.Lives < 1 {
		c.Player.Lives = 1
	}

	if c.Hazards.Count < 0 {
		c.Hazards.Count = 0
	}
	if c.Hazards.MinSpeed < 0 {
		c.Hazards.MinSpeed = 0
	}
	if c.Hazards.SpeedRange < 0 {
		c.Hazards.SpeedRange = 0
	}
	if c.Hazards.Radius <= 0 {
		c.Hazards.Radius = def.Hazards.Radius
	}

	// At least one collectible is always spawned
	if c.Pickups.MinCount < 1 {
		c.Pickups.MinCount = 1
	}
	if c.Pickups.MaxCount < c.Pickups.MinCount {
		c.Pickups.MaxCount = c.Pickups.MinCount
	}
	if c.Pickups.RangeX < 0 {
		c.Pickups.RangeX = 0
	}
	if c.Pickups.RangeY < 0 {
		c.Pickups.RangeY = 0
	}
	if c.Pickups.Radius <= 0 {
		c.Pickups.Radius = def.Pickups.Radius
	}
	if len(c.Pickups.Tiers) == 0 {
		c.Pickups.Tiers = DefaultTiers()
	}

	if c.Goal.Radius <= 0 {
		c.Goal.Radius = def.Goal.Radius
	}
	if c.Goal.Threshold < 0 {
		c.Goal.Threshold = 0
	}
	if c.Scoring.DeathPenalty < 0 {
		c.Scoring.DeathPenalty = 0
	}

	c.Difficulty.Level = clampF(c.Difficulty.Level, 0.0, 1.0)
	if c.Difficulty.SpeedMultiplier < 0 {
		c.Difficulty.SpeedMultiplier = 0
	}
}
