package engine

// Grid is the fixed-size tile map of a level.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	tiles []Tile
}

// NewGrid creates a grid with every tile Empty.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		tiles: make([]Tile, w*h),
	}
}

// NewWalledGrid creates a grid whose border ring is Wall and whose interior is fill.
func NewWalledGrid(w, h int, fill Tile) *Grid {
	g := NewGrid(w, h)
	for y := range h {
		for x := range w {
			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				g.tiles[y*w+x] = TileWall
			} else {
				g.tiles[y*w+x] = fill
			}
		}
	}
	return g
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// TileAt returns the tile at c. Out-of-bounds coordinates read as Wall,
// so the playfield is always implicitly walled.
func (g *Grid) TileAt(c Coord) Tile {
	if !g.InBounds(c) {
		return TileWall
	}
	return g.tiles[c.Y*g.W+c.X]
}

// SetTile changes the tile at c. Out-of-bounds writes are ignored.
func (g *Grid) SetTile(c Coord, t Tile) {
	if g.InBounds(c) {
		g.tiles[c.Y*g.W+c.X] = t
	}
}

// Count returns how many tiles of type t the grid holds.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// BorderIntact reports whether every tile of the outer ring is Wall.
func (g *Grid) BorderIntact() bool {
	for x := range g.W {
		if g.TileAt(C(x, 0)) != TileWall || g.TileAt(C(x, g.H-1)) != TileWall {
			return false
		}
	}
	for y := range g.H {
		if g.TileAt(C(0, y)) != TileWall || g.TileAt(C(g.W-1, y)) != TileWall {
			return false
		}
	}
	return true
}

// Tiles returns a copy of the tile array in row-major order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		W:     g.W,
		H:     g.H,
		tiles: g.Tiles(),
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}
