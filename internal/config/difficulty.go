package config

import "math"

// minGravityInterval keeps falls readable however far the difficulty ramps.
const minGravityInterval = 0.05

// DifficultyManager derives per-level generator and physics values from the
// campaign level number.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) of campaign level n.
// Level 1 plays at the initial level; MaxAt and beyond play at 1.0.
func (d *DifficultyManager) Level(n int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	span := float64(d.cfg.Progression.MaxAt - 1)
	if span <= 0 {
		span = 1 // Prevent division by zero
	}
	progress := clampF(float64(n-1)/span, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// scaled adds the difficulty share of extra to base.
func (d *DifficultyManager) scaled(base, extra, n int) int {
	return base + int(math.Round(d.Level(n)*float64(extra)))
}

// Crystals returns the crystal count for level n.
func (d *DifficultyManager) Crystals(base, n int) int {
	return d.scaled(base, d.cfg.Scaling.ExtraCrystals, n)
}

// Stones returns the stone count for level n.
func (d *DifficultyManager) Stones(base, n int) int {
	return d.scaled(base, d.cfg.Scaling.ExtraStones, n)
}

// Worms returns the worm count for level n.
func (d *DifficultyManager) Worms(base, n int) int {
	return d.scaled(base, d.cfg.Scaling.ExtraWorms, n)
}

// StoneWallProbability returns the stone-wall fill chance for level n.
func (d *DifficultyManager) StoneWallProbability(base float64, n int) float64 {
	return clampF(base+d.Level(n)*d.cfg.Scaling.StoneWallBonus, 0.0, 0.5)
}

// GravityInterval returns the gravity cadence for level n. Harder levels fall faster.
func (d *DifficultyManager) GravityInterval(base float64, n int) float64 {
	return math.Max(minGravityInterval, base*(1.0-d.Level(n)*d.cfg.Scaling.GravitySpeedup))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
