// Package levels provides level content for Earthshaker: the seeded random
// generator, YAML level packs and their validation.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/engine"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/levels/formats"
)

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	Number    int   // 1-based position in its campaign
	Seed      int64 // Generator seed, 0 for hand-made levels
	Layout    *engine.Layout
	Overrides formats.Overrides
	FilePath  string
}

// NewSession starts a fresh engine session for this level.
func (l *Level) NewSession(base engine.Settings) *engine.Level {
	return engine.NewLevelFromLayout(l.Layout, l.Overrides.Apply(base))
}

// CrystalCount returns how many crystals the level contains.
func (l *Level) CrystalCount() int {
	n := 0
	for _, s := range l.Layout.Spawns {
		if s.Kind == engine.KindCrystal {
			n++
		}
	}
	return n
}
