package engine

// ObjectView is the read-only state of one object.
type ObjectView struct {
	ID     int
	Kind   Kind
	Active bool
	Fall   FallState
	Tile   Coord // Logical tile (destination while moving)
	From   Coord // Start tile of the current move
	Pos    Vec
	Moving bool
}

// PlayerView is the read-only state of the player.
type PlayerView struct {
	Tile      Coord
	From      Coord
	Pos       Vec
	Moving    bool
	Collected int
	Alive     bool
}

// Snapshot is a value copy of everything collaborators may query.
type Snapshot struct {
	Tick              uint64
	W                 int
	H                 int
	Tiles             []Tile
	Objects           []ObjectView
	Player            PlayerView
	TotalCrystals     int
	RemainingCrystals int
	Completed         bool
	Smooth            bool
	TileSize          float64
}

// TileAt returns the tile at c, Wall when out of bounds.
func (s Snapshot) TileAt(c Coord) Tile {
	if c.X < 0 || c.X >= s.W || c.Y < 0 || c.Y >= s.H {
		return TileWall
	}
	return s.Tiles[c.Y*s.W+c.X]
}

// Snapshot captures the current level state.
func (l *Level) Snapshot() Snapshot {
	return Snapshot{
		Tick:              l.tick,
		W:                 l.grid.W,
		H:                 l.grid.H,
		Tiles:             l.grid.Tiles(),
		Objects:           l.Objects(),
		Player:            l.Player(),
		TotalCrystals:     l.TotalCrystals(),
		RemainingCrystals: l.RemainingCrystals(),
		Completed:         l.completed,
		Smooth:            l.settings.SmoothMovement,
		TileSize:          l.settings.TileSize,
	}
}

// Objects returns the state of every object, inactive ones included, in list order.
func (l *Level) Objects() []ObjectView {
	out := make([]ObjectView, len(l.objects))
	for i, o := range l.objects {
		out[i] = ObjectView{
			ID:     o.ID,
			Kind:   o.Kind,
			Active: o.Active,
			Fall:   o.Fall,
			Tile:   o.Tile(),
			From:   o.From(),
			Pos:    o.Pos,
			Moving: o.Moving(),
		}
	}
	return out
}

// Player returns the state of the player.
func (l *Level) Player() PlayerView {
	p := l.player
	return PlayerView{
		Tile:      p.Tile(),
		From:      p.From(),
		Pos:       p.Pos,
		Moving:    p.Moving(),
		Collected: p.Collected,
		Alive:     p.Alive,
	}
}

// Layout rebuilds level content from the snapshot. Active objects and the
// player are placed on their logical tiles.
func (s Snapshot) Layout() *Layout {
	grid := NewGrid(s.W, s.H)
	for i, t := range s.Tiles {
		grid.SetTile(C(i%s.W, i/s.W), t)
	}

	var spawns []Spawn
	for _, o := range s.Objects {
		if o.Active {
			spawns = append(spawns, Spawn{Kind: o.Kind, At: o.Tile})
		}
	}
	return &Layout{Grid: grid, Spawns: spawns, Start: s.Player.Tile}
}
