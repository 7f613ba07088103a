package engine

// motionEpsilon absorbs float drift when many small dt steps should add up
// to exactly one move duration.
const motionEpsilon = 1e-9

// Body is the sub-tile motion component shared by the player and objects.
//
// While idle, from == to and Pos is the origin of that tile. While moving,
// the body reserves both from and to, and Pos is interpolated between them.
// The arrival hook runs exactly once per completed move.
type Body struct {
	Pos Vec

	from     Coord
	to       Coord
	start    Vec
	target   Vec
	elapsed  float64
	duration float64
	moving   bool
	onArrive func()
}

func newBody(at Coord, tileSize float64, onArrive func()) Body {
	return Body{
		Pos:      TileOrigin(at, tileSize),
		from:     at,
		to:       at,
		onArrive: onArrive,
	}
}

// Moving reports whether a move is in flight.
func (b *Body) Moving() bool {
	return b.moving
}

// Tile returns the logical tile: the destination while moving, the current tile otherwise.
func (b *Body) Tile() Coord {
	return b.to
}

// From returns the tile the current move started from (equal to Tile when idle).
func (b *Body) From() Coord {
	return b.from
}

// Occupies reports whether the body reserves tile c.
func (b *Body) Occupies(c Coord) bool {
	return c == b.from || c == b.to
}

// OccupiedTiles returns the reserved tiles: one when idle, two while moving.
func (b *Body) OccupiedTiles() []Coord {
	if b.from == b.to {
		return []Coord{b.to}
	}
	return []Coord{b.from, b.to}
}

// Progress returns the interpolation progress of the current move in [0, 1].
func (b *Body) Progress() float64 {
	if !b.moving || b.duration <= 0 {
		return 1
	}
	return min(1, b.elapsed/b.duration)
}

// StartMovement begins a move to tile dest. It returns false and changes nothing
// if a move is already in flight. When smooth is false (or duration is not
// positive) the body snaps to dest and the arrival hook runs before returning.
func (b *Body) StartMovement(dest Coord, tileSize float64, smooth bool, duration float64) bool {
	if b.moving {
		return false
	}
	target := TileOrigin(dest, tileSize)

	if !smooth || duration <= 0 {
		b.Pos = target
		b.from = dest
		b.to = dest
		b.arrive()
		return true
	}

	b.start = b.Pos
	b.target = target
	b.to = dest
	b.elapsed = 0
	b.duration = duration
	b.moving = true
	return true
}

// Advance moves the interpolation forward by dt seconds.
// Returns true on the tick the move completes.
func (b *Body) Advance(dt float64) bool {
	if !b.moving {
		return false
	}
	b.elapsed += dt
	if b.elapsed+motionEpsilon >= b.duration {
		b.Pos = b.target
		b.from = b.to
		b.moving = false
		b.arrive()
		return true
	}
	b.Pos = b.start.Lerp(b.target, b.elapsed/b.duration)
	return false
}

func (b *Body) arrive() {
	if b.onArrive != nil {
		b.onArrive()
	}
}
