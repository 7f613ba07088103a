package levels

import (
	"errors"
	"fmt"

	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/engine"
)

// Validation errors.
var (
	ErrBorderBroken   = errors.New("border ring is not all Wall")
	ErrPlayerBlocked  = errors.New("player does not start on an Empty tile")
	ErrObjectOffEmpty = errors.New("object not on an Empty tile")
	ErrSharedTile     = errors.New("two entities share a tile")
	ErrNoExit         = errors.New("level has no exit")
)

// Validate checks that layout content is playable by the engine.
// All problems are reported together.
func Validate(layout *engine.Layout) error {
	var errs []error
	g := layout.Grid

	if !g.BorderIntact() {
		errs = append(errs, ErrBorderBroken)
	}
	if g.Count(engine.TileExit) == 0 {
		errs = append(errs, ErrNoExit)
	}
	if g.TileAt(layout.Start) != engine.TileEmpty {
		errs = append(errs, fmt.Errorf("%w: %v is %v", ErrPlayerBlocked, layout.Start, g.TileAt(layout.Start)))
	}

	seen := map[engine.Coord]bool{layout.Start: true}
	for i, s := range layout.Spawns {
		if t := g.TileAt(s.At); t != engine.TileEmpty {
			errs = append(errs, fmt.Errorf("%w: %s #%d at %v is on %v", ErrObjectOffEmpty, s.Kind, i, s.At, t))
		}
		if seen[s.At] {
			errs = append(errs, fmt.Errorf("%w: %s #%d at %v", ErrSharedTile, s.Kind, i, s.At))
		}
		seen[s.At] = true
	}

	return errors.Join(errs...)
}
