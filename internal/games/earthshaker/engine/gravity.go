package engine

import "slices"

// applyGravity runs one gravity evaluation over every active, idle, fallable
// object in list order. Earlier objects resolve first, so an object that
// starts moving reserves its tiles before later objects are considered.
//
// An object moved during this pass keeps both its tiles reserved until the
// pass ends, even when instant movement already snapped it to its target.
// This keeps the two movement models in lockstep.
func (l *Level) applyGravity() {
	l.passed = l.passed[:0]
	l.vacated = l.vacated[:0]

	for _, o := range l.objects {
		if !o.Active || o.Moving() || !o.Kind.Caps().CanFall {
			continue
		}
		if l.claimedByPlayer(o) {
			continue
		}

		here := o.Tile()
		dir := l.fallDirection(o)
		o.mustFall = false

		switch dir {
		case DirNone:
			o.Fall = FallStable
			continue
		case DirDown:
			o.Fall = FallFalling
		default:
			o.Fall = FallSliding
		}

		if !o.StartMovement(here.Step(dir), l.settings.TileSize, l.settings.SmoothMovement, l.settings.ObjectMoveDuration) {
			o.Fall = FallStable
			continue
		}
		l.passed = append(l.passed, o)
		l.vacated = append(l.vacated, here)
		l.emit(Event{Kind: EventObjectMoved, Tile: here, ObjectID: o.ID, Dir: dir})
	}
}

// fallDirection decides where o goes next: Down, Right, Left or nowhere.
// Right is tried before Left. After a lateral hop only Down is considered.
func (l *Level) fallDirection(o *Object) Dir {
	here := o.Tile()
	below := here.Step(DirDown)
	if l.canObjectEnter(below, o) {
		return DirDown
	}
	if o.mustFall || !l.isSlippery(below, o) {
		return DirNone
	}
	for _, d := range [...]Dir{DirRight, DirLeft} {
		side := here.Step(d)
		if l.canObjectEnter(side, o) && l.canObjectEnter(side.Step(DirDown), o) {
			return d
		}
	}
	return DirNone
}

// canObjectEnter reports whether o may move into tile c: the tile is Empty,
// the player does not reserve it and no other active object reserves it.
func (l *Level) canObjectEnter(c Coord, o *Object) bool {
	if l.grid.TileAt(c) != TileEmpty {
		return false
	}
	if l.player.Occupies(c) || slices.Contains(l.vacated, c) {
		return false
	}
	return l.objectAtExcept(c, o) == nil
}

// isSlippery reports whether the support at tile c lets a resting object
// roll off. Walls, stone walls and resting objects of any kind are slippery.
// Earth, the exit and the player never are.
func (l *Level) isSlippery(c Coord, self *Object) bool {
	if l.player.Occupies(c) {
		return false
	}
	if other := l.objectAtExcept(c, self); other != nil {
		return !other.Moving() && !slices.Contains(l.passed, other)
	}
	switch l.grid.TileAt(c) {
	case TileWall, TileStoneWall:
		return true
	default:
		return false
	}
}
