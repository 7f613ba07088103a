package engine

import "math"

// Level is one running level session: the grid, its objects and the player.
// All mutation happens inside Tick (plus the explicit DestroyPlayer and
// SetSmoothMovement calls) on the caller's goroutine.
type Level struct {
	grid     *Grid
	objects  []*Object
	player   *Player
	settings Settings

	gravityTimer float64
	tick         uint64
	completed    bool
	events       []Event

	// Objects moved by the current gravity pass and the tiles they left.
	passed  []*Object
	vacated []Coord
}

// NewLevel builds a level from a grid, object spawns and a player start tile.
// The grid is copied. Spawns are taken in order; object IDs are their indices.
// Content checks (objects only on Empty, no shared tiles) belong to the caller.
func NewLevel(grid *Grid, spawns []Spawn, start Coord, settings Settings) *Level {
	settings = settings.normalized()
	l := &Level{
		grid:     grid.Clone(),
		objects:  make([]*Object, 0, len(spawns)),
		settings: settings,
	}
	for i, s := range spawns {
		l.objects = append(l.objects, newObject(i, s.Kind, s.At, settings.TileSize))
	}
	l.player = &Player{Alive: true}
	l.player.Body = newBody(start, settings.TileSize, l.playerArrived)
	return l
}

// NewLevelFromLayout builds a level from a parsed layout.
func NewLevelFromLayout(layout *Layout, settings Settings) *Level {
	return NewLevel(layout.Grid, layout.Spawns, layout.Start, settings)
}

// Tick advances the level by one step. Order within a tick:
//  1. apply a settings-changed signal,
//  2. advance the player and every active object,
//  3. run the player controller on the intent,
//  4. accumulate the gravity timer and evaluate gravity at most once.
//
// Motion is advanced before gravity so an object that lands this tick is
// seen as idle by the same tick's gravity pass.
func (l *Level) Tick(in TickInput) TickResult {
	l.tick++
	dt := in.DT
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	in.DT = dt

	if in.ToggleSmooth {
		l.SetSmoothMovement(!l.settings.SmoothMovement)
	}

	l.player.Advance(dt)
	for _, o := range l.objects {
		if o.Active {
			o.Advance(dt)
		}
	}

	l.handleIntent(in)

	l.gravityTimer += dt
	if l.gravityTimer+motionEpsilon >= l.settings.GravityInterval {
		l.gravityTimer = 0
		l.applyGravity()
	}

	res := TickResult{
		Tick:            l.tick,
		Events:          l.events,
		Completed:       l.completed,
		PlayerDestroyed: !l.player.Alive,
	}
	l.events = nil
	return res
}

func (l *Level) emit(e Event) {
	l.events = append(l.events, e)
}

// SetSmoothMovement switches the movement model. Moves already in flight
// finish under the model they started with.
func (l *Level) SetSmoothMovement(smooth bool) {
	if l.settings.SmoothMovement == smooth {
		return
	}
	l.settings.SmoothMovement = smooth
	l.emit(Event{Kind: EventSettingsChanged, Tile: l.player.Tile(), ObjectID: -1})
}

// DestroyPlayer kills the player. The event is reported by the next Tick.
// Calling it again has no effect.
func (l *Level) DestroyPlayer() {
	if !l.player.Alive {
		return
	}
	l.player.Alive = false
	l.player.heldDir = DirNone
	l.player.repeatTimer = 0
	l.emit(Event{Kind: EventPlayerDestroyed, Tile: l.player.Tile(), ObjectID: -1})
}

// RemainingCrystals counts active crystals. Computed on demand.
func (l *Level) RemainingCrystals() int {
	n := 0
	for _, o := range l.objects {
		if o.Active && o.Kind == KindCrystal {
			n++
		}
	}
	return n
}

// TotalCrystals counts every crystal the level started with.
func (l *Level) TotalCrystals() int {
	n := 0
	for _, o := range l.objects {
		if o.Kind == KindCrystal {
			n++
		}
	}
	return n
}

// Settings returns the settings in effect, including any toggle.
func (l *Level) Settings() Settings { return l.settings }

// Completed reports whether LevelComplete has been emitted.
func (l *Level) Completed() bool { return l.completed }

// PlayerAlive reports whether the player has not been destroyed.
func (l *Level) PlayerAlive() bool { return l.player.Alive }

// Width returns the grid width in tiles.
func (l *Level) Width() int { return l.grid.W }

// Height returns the grid height in tiles.
func (l *Level) Height() int { return l.grid.H }

// TileAt returns the tile at c, Wall when out of bounds.
func (l *Level) TileAt(c Coord) Tile {
	return l.grid.TileAt(c)
}
