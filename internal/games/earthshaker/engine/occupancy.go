package engine

import (
	"errors"
	"fmt"
)

// Occupancy is answered by a linear scan of the object list. Levels hold a
// few dozen objects at most, so no tile index is maintained.

// ObjectAt returns the active object reserving tile c, or nil.
// A moving object reserves both its start and target tile.
func (l *Level) ObjectAt(c Coord) *Object {
	return l.objectAtExcept(c, nil)
}

func (l *Level) objectAtExcept(c Coord, skip *Object) *Object {
	for _, o := range l.objects {
		if o == skip || !o.Active {
			continue
		}
		if o.Occupies(c) {
			return o
		}
	}
	return nil
}

// PlayerOccupies reports whether the player reserves tile c.
func (l *Level) PlayerOccupies(c Coord) bool {
	return l.player.Occupies(c)
}

// claimedByPlayer reports whether o is a collectible the player is standing
// on or walking into. Such an object is frozen until it is collected.
func (l *Level) claimedByPlayer(o *Object) bool {
	return o.Kind.Caps().Collectible && !o.Moving() && l.player.Tile() == o.Tile()
}

// CheckOccupancy returns an error describing every tile reserved by more than
// one entity. The only permitted overlap is the player with an idle
// collectible on the player's logical tile.
func (l *Level) CheckOccupancy() error {
	var errs []error
	for i, a := range l.objects {
		if !a.Active {
			continue
		}
		for _, b := range l.objects[i+1:] {
			if !b.Active {
				continue
			}
			for _, c := range a.OccupiedTiles() {
				if b.Occupies(c) {
					errs = append(errs, fmt.Errorf("tile %s: %s #%d overlaps %s #%d", c, a.Kind, a.ID, b.Kind, b.ID))
					break
				}
			}
		}
		if l.claimedByPlayer(a) {
			continue
		}
		for _, c := range a.OccupiedTiles() {
			if l.player.Occupies(c) {
				errs = append(errs, fmt.Errorf("tile %s: %s #%d overlaps player", c, a.Kind, a.ID))
				break
			}
		}
	}
	return errors.Join(errs...)
}
