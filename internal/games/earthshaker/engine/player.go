package engine

// Player is the controllable entity.
type Player struct {
	Body

	Collected int  // Crystals collected in this level
	Alive     bool // False once destroyed; no further moves are accepted

	heldDir     Dir
	repeatTimer float64
}

// CanPlayerMoveTo reports whether the player may step onto tile c.
// The tile must be Empty, Earth or Exit. An active Stone or Bubble blocks it,
// as does any object currently in motion through it. Idle crystals and worms
// are collectible and do not block.
func (l *Level) CanPlayerMoveTo(c Coord) bool {
	if !l.grid.TileAt(c).Walkable() {
		return false
	}
	for _, o := range l.objects {
		if !o.Active || !o.Occupies(c) {
			continue
		}
		if o.Kind.Caps().BlocksPlayer || o.Moving() {
			return false
		}
	}
	return true
}

// handleIntent runs the player state machine for one tick.
func (l *Level) handleIntent(in TickInput) {
	p := l.player
	if in.Intent == DirNone || !p.Alive || l.completed {
		p.heldDir = DirNone
		p.repeatTimer = 0
		return
	}
	if p.Moving() {
		return
	}

	switch {
	case in.JustPressed:
		p.heldDir = in.Intent
		p.repeatTimer = 0
		l.tryMove(in.Intent)
	case in.Intent != p.heldDir:
		// Direction changed without a fresh press: restart the repeat delay.
		p.heldDir = in.Intent
		p.repeatTimer = 0
	default:
		p.repeatTimer += in.DT
		if p.repeatTimer+motionEpsilon >= l.settings.RepeatDelay {
			p.repeatTimer = 0
			l.tryMove(in.Intent)
		}
	}
}

func (l *Level) tryMove(d Dir) bool {
	target := l.player.Tile().Step(d)
	if !l.CanPlayerMoveTo(target) {
		return false
	}
	return l.player.StartMovement(target, l.settings.TileSize, l.settings.SmoothMovement, l.settings.PlayerMoveDuration)
}

// playerArrived is the player's post-move hook: dig, collect, exit check.
func (l *Level) playerArrived() {
	at := l.player.Tile()

	if l.grid.TileAt(at) == TileEarth {
		l.grid.SetTile(at, TileEmpty)
		l.emit(Event{Kind: EventTileDug, Tile: at, ObjectID: -1})
	}

	for _, o := range l.objects {
		if !o.Active || !o.Kind.Caps().Collectible || o.Tile() != at {
			continue
		}
		o.Active = false
		switch o.Kind {
		case KindCrystal:
			l.player.Collected++
			l.emit(Event{Kind: EventCrystalCollected, Tile: at, ObjectID: o.ID})
		case KindWorm:
			l.emit(Event{Kind: EventWormEaten, Tile: at, ObjectID: o.ID})
		}
	}

	if l.grid.TileAt(at) == TileExit && !l.completed && l.RemainingCrystals() == 0 {
		l.completed = true
		l.emit(Event{Kind: EventLevelComplete, Tile: at, ObjectID: -1})
	}
}
