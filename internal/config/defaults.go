package config

import (
	_ "embed"
)

//go:embed defaults/earthshaker.yaml
var defaultEarthshakerYAML []byte

// DefaultEarthshakerConfig returns the default configuration.
func DefaultEarthshakerConfig() EarthshakerConfig {
	return EarthshakerConfig{
		Movement: MovementConfig{
			Smooth:             true,
			PlayerMoveDuration: 0.2,
			ObjectMoveDuration: 0.15,
			RepeatDelay:        0.15,
			HoldWindow:         0.25,
		},
		Physics: PhysicsConfig{
			GravityInterval: 0.2,
			TileSize:        64,
		},
		Generator: GeneratorConfig{
			Width:                15,
			Height:               12,
			EarthProbability:     0.3,
			StoneWallProbability: 0.05,
			Crystals:             8,
			Stones:               5,
			Worms:                3,
			Bubbles:              2,
			MaxAttempts:          100,
		},
		Campaign: CampaignConfig{
			MaxLevel:           10,
			Lives:              3,
			CrystalPoints:      10,
			WormPoints:         5,
			LevelClearBase:     100,
			LevelClearPerLevel: 50,
			ClearBannerSeconds: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				ExtraCrystals:  7,
				ExtraStones:    6,
				ExtraWorms:     3,
				StoneWallBonus: 0.1,
				GravitySpeedup: 0.25,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEarthshakerYAML
}
