// Package config provides YAML-based configuration loading and difficulty
// presets for the crossing game.
package config

// CrossingConfig contains every tunable of the crossing simulation.
// Distances are in canvas pixels, speeds in pixels per second.
type CrossingConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Player     PlayerConfig     `yaml:"player"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Goal       GoalConfig       `yaml:"goal"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Bounds     BoundsConfig     `yaml:"bounds"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig describes the logical drawing surface and its tile grid.
type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
}

// PlayerConfig defines the controlled entity.
type PlayerConfig struct {
	StartX   float64 `yaml:"start_x"`
	StartY   float64 `yaml:"start_y"`
	StepX    float64 `yaml:"step_x"`    // Horizontal distance of one key press
	StepY    float64 `yaml:"step_y"`    // Vertical distance of one key press
	Lives    int     `yaml:"lives"`
	GoalLine float64 `yaml:"goal_line"` // Reaching y < goal_line counts as a win
}

// HazardConfig defines lane spawning and hazard contact.
type HazardConfig struct {
	Count      int     `yaml:"count"`       // Spawned in pairs, odd counts round down
	StartX     float64 `yaml:"start_x"`     // Spawn x of the leading hazard (negative = off-screen)
	StartY     float64 `yaml:"start_y"`     // y of the first lane
	LaneHeight float64 `yaml:"lane_height"` // Vertical distance between lanes
	MinSpeed   float64 `yaml:"min_speed"`
	SpeedRange float64 `yaml:"speed_range"` // Speed is drawn from [min_speed, min_speed+speed_range)
	Radius     float64 `yaml:"radius"`      // Lethal proximity radius
}

// PickupConfig defines collectible spawning.
type PickupConfig struct {
	MinCount int          `yaml:"min_count"`
	MaxCount int          `yaml:"max_count"`
	MinX     float64      `yaml:"min_x"`
	RangeX   float64      `yaml:"range_x"`
	MinY     float64      `yaml:"min_y"`
	RangeY   float64      `yaml:"range_y"`
	Radius   float64      `yaml:"radius"` // Pickup proximity radius
	Tiers    []PickupTier `yaml:"tiers"`
}

// PickupTier is one point value a collectible can be worth.
type PickupTier struct {
	Points int    `yaml:"points"`
	Sprite string `yaml:"sprite"`
}

// GoalConfig defines the exit door that unlocks at a score threshold.
type GoalConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Radius    float64 `yaml:"radius"`
	Threshold int     `yaml:"threshold"` // Score at which the door opens
	Bonus     int     `yaml:"bonus"`     // Points awarded for leaving through the door
}

// ScoringConfig defines score changes outside pickups and the door.
type ScoringConfig struct {
	WinPoints    int `yaml:"win_points"`    // Reaching the water
	DeathPenalty int `yaml:"death_penalty"` // Deducted on death, floored at zero
}

// BoundsConfig holds the three boundary rectangles, one per entity kind.
type BoundsConfig struct {
	Player  EdgeConfig `yaml:"player"`
	Hazard  EdgeConfig `yaml:"hazard"`
	Default EdgeConfig `yaml:"default"`
}

// EdgeConfig places a boundary rectangle relative to the canvas.
// Left and Top are absolute; Right and Bottom are insets from the canvas
// width and height so the rectangle follows canvas resizes.
type EdgeConfig struct {
	Left        float64 `yaml:"left"`
	Top         float64 `yaml:"top"`
	RightInset  float64 `yaml:"right_inset"`
	BottomInset float64 `yaml:"bottom_inset"`
}

// DifficultyConfig scales hazard speeds at spawn time.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Level           float64 `yaml:"level"`            // 0.0 = easy, 1.0 = hard
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed factor at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// LevelForPreset returns the difficulty level for a preset.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset converts a CLI string to a preset. Unknown values return
// an empty preset, which leaves the loaded config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
