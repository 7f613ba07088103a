// Package engine provides the tile-grid physics and movement core for Earthshaker.
// This package is UI-agnostic and deterministic: the same layout, settings and
// inputs always produce the same state.
package engine

import "fmt"

// Tile is the static content of one grid cell.
type Tile uint8

const (
	TileEmpty     Tile = iota
	TileEarth          // Diggable, becomes Empty when the player walks onto it
	TileWall           // Level border and interior brick walls
	TileStoneWall      // Impassable rock, not an object
	TileExit           // Completes the level once every crystal is collected
)

// String returns the string representation of a tile.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileEarth:
		return "Earth"
	case TileWall:
		return "Wall"
	case TileStoneWall:
		return "StoneWall"
	case TileExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Walkable reports whether the player may step onto the tile.
func (t Tile) Walkable() bool {
	return t == TileEmpty || t == TileEarth || t == TileExit
}

// Dir is a cardinal direction. DirNone means no intent.
// The numeric order Left, Right, Up, Down is the tie-break order used by FirstIntent.
type Dir uint8

const (
	DirNone Dir = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Lateral reports whether the direction is Left or Right.
func (d Dir) Lateral() bool {
	return d == DirLeft || d == DirRight
}

// FirstIntent picks one direction out of several reported at once,
// in the fixed order Left, Right, Up, Down. Returns DirNone if none is set.
func FirstIntent(dirs ...Dir) Dir {
	best := DirNone
	for _, d := range dirs {
		if d == DirNone || d > DirDown {
			continue
		}
		if best == DirNone || d < best {
			best = d
		}
	}
	return best
}

// Coord is a tile coordinate. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring Coord in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Vec is a position in continuous world units (TileSize units per tile).
type Vec struct {
	X float64
	Y float64
}

// Lerp interpolates componentwise between v and to; t is clamped to [0, 1].
func (v Vec) Lerp(to Vec, t float64) Vec {
	if t <= 0 {
		return v
	}
	if t >= 1 {
		return to
	}
	return Vec{
		X: v.X + (to.X-v.X)*t,
		Y: v.Y + (to.Y-v.Y)*t,
	}
}

// TileOrigin returns the world position of the top-left corner of tile c.
func TileOrigin(c Coord, tileSize float64) Vec {
	return Vec{X: float64(c.X) * tileSize, Y: float64(c.Y) * tileSize}
}
