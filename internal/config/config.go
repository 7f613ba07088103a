// Package config provides YAML-based game configuration loading and
// difficulty management for Earthshaker.
package config

import "github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/engine"

// EarthshakerConfig contains all configuration for the game.
type EarthshakerConfig struct {
	Movement   MovementConfig   `yaml:"movement"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Campaign   CampaignConfig   `yaml:"campaign"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MovementConfig defines how the player and objects move between tiles.
type MovementConfig struct {
	Smooth             bool    `yaml:"smooth"`               // Interpolated moves instead of grid snapping
	PlayerMoveDuration float64 `yaml:"player_move_duration"` // Seconds per player step
	ObjectMoveDuration float64 `yaml:"object_move_duration"` // Seconds per falling/sliding hop
	RepeatDelay        float64 `yaml:"repeat_delay"`         // Held-key auto-repeat delay
	HoldWindow         float64 `yaml:"hold_window"`          // Terminal key-repeat gap still counted as held
}

// PhysicsConfig defines gravity parameters.
type PhysicsConfig struct {
	GravityInterval float64 `yaml:"gravity_interval"` // Seconds between gravity evaluations
	TileSize        float64 `yaml:"tile_size"`        // World units per tile
}

// GeneratorConfig defines random level content at level 1.
type GeneratorConfig struct {
	Width                int     `yaml:"width"`
	Height               int     `yaml:"height"`
	EarthProbability     float64 `yaml:"earth_probability"`
	StoneWallProbability float64 `yaml:"stone_wall_probability"`
	Crystals             int     `yaml:"crystals"`
	Stones               int     `yaml:"stones"`
	Worms                int     `yaml:"worms"`
	Bubbles              int     `yaml:"bubbles"`
	MaxAttempts          int     `yaml:"max_attempts"`
}

// CampaignConfig defines lives, scoring and level count.
type CampaignConfig struct {
	MaxLevel           int     `yaml:"max_level"`
	Lives              int     `yaml:"lives"`
	CrystalPoints      int     `yaml:"crystal_points"`
	WormPoints         int     `yaml:"worm_points"`
	LevelClearBase     int     `yaml:"level_clear_base"`
	LevelClearPerLevel int     `yaml:"level_clear_per_level"`
	ClearBannerSeconds float64 `yaml:"clear_banner_seconds"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases across the campaign.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level number at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max difficulty.
type ScalingConfig struct {
	ExtraCrystals  int     `yaml:"extra_crystals"`
	ExtraStones    int     `yaml:"extra_stones"`
	ExtraWorms     int     `yaml:"extra_worms"`
	StoneWallBonus float64 `yaml:"stone_wall_bonus"` // Added to stone_wall_probability
	GravitySpeedup float64 `yaml:"gravity_speedup"`  // Fraction removed from gravity_interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.6
	default:
		return 0.0
	}
}

// EngineSettings converts the movement and physics sections to engine settings.
func (c EarthshakerConfig) EngineSettings() engine.Settings {
	return engine.Settings{
		SmoothMovement:     c.Movement.Smooth,
		GravityInterval:    c.Physics.GravityInterval,
		PlayerMoveDuration: c.Movement.PlayerMoveDuration,
		ObjectMoveDuration: c.Movement.ObjectMoveDuration,
		RepeatDelay:        c.Movement.RepeatDelay,
		TileSize:           c.Physics.TileSize,
	}
}
