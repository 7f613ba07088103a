package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Layout characters.
const (
	CharWall      = '#'
	CharStoneWall = 'X'
	CharEarth     = '.'
	CharEmpty     = ' '
	CharExit      = 'E'
	CharPlayer    = 'P'
	CharStone     = 'o'
	CharCrystal   = '*'
	CharWorm      = 'w'
	CharBubble    = 'b'
)

var (
	ErrEmptyLayout   = errors.New("layout has no rows")
	ErrRaggedLayout  = errors.New("layout rows differ in width")
	ErrNoPlayer      = errors.New("layout has no player")
	ErrManyPlayers   = errors.New("layout has more than one player")
	ErrUnknownSymbol = errors.New("unknown layout symbol")
)

// Layout is level content parsed from ASCII rows.
type Layout struct {
	Grid   *Grid
	Spawns []Spawn
	Start  Coord
}

var tileChars = map[rune]Tile{
	CharWall:      TileWall,
	CharStoneWall: TileStoneWall,
	CharEarth:     TileEarth,
	CharEmpty:     TileEmpty,
	CharExit:      TileExit,
}

var objectChars = map[rune]Kind{
	CharStone:   KindStone,
	CharCrystal: KindCrystal,
	CharWorm:    KindWorm,
	CharBubble:  KindBubble,
}

// ParseLayout builds a layout from rows of equal width. Objects and the
// player stand on Empty tiles. Objects are spawned in reading order.
func ParseLayout(rows []string) (*Layout, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}
	w := len([]rune(rows[0]))
	if w == 0 {
		return nil, ErrEmptyLayout
	}

	lay := &Layout{Grid: NewGrid(w, len(rows))}
	players := 0
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("row %d: %w (%d, expected %d)", y, ErrRaggedLayout, len(runes), w)
		}
		for x, r := range runes {
			c := C(x, y)
			if t, ok := tileChars[r]; ok {
				lay.Grid.SetTile(c, t)
				continue
			}
			if k, ok := objectChars[r]; ok {
				lay.Spawns = append(lay.Spawns, Spawn{Kind: k, At: c})
				continue
			}
			if r == CharPlayer {
				players++
				lay.Start = c
				continue
			}
			return nil, fmt.Errorf("row %d col %d: %w %q", y, x, ErrUnknownSymbol, r)
		}
	}

	switch {
	case players == 0:
		return nil, ErrNoPlayer
	case players > 1:
		return nil, ErrManyPlayers
	}
	return lay, nil
}

// FormatLayout renders a grid, spawns and player start back to ASCII rows.
func FormatLayout(grid *Grid, spawns []Spawn, start Coord) []string {
	cells := make([][]rune, grid.H)
	for y := range grid.H {
		cells[y] = make([]rune, grid.W)
		for x := range grid.W {
			cells[y][x] = tileChar(grid.TileAt(C(x, y)))
		}
	}
	for _, s := range spawns {
		if grid.InBounds(s.At) {
			cells[s.At.Y][s.At.X] = kindChar(s.Kind)
		}
	}
	if grid.InBounds(start) {
		cells[start.Y][start.X] = CharPlayer
	}

	rows := make([]string, grid.H)
	for y, r := range cells {
		rows[y] = string(r)
	}
	return rows
}

// String renders the layout as newline-separated rows.
func (l *Layout) String() string {
	return strings.Join(FormatLayout(l.Grid, l.Spawns, l.Start), "\n")
}

func tileChar(t Tile) rune {
	for r, tt := range tileChars {
		if tt == t {
			return r
		}
	}
	return '?'
}

func kindChar(k Kind) rune {
	for r, kk := range objectChars {
		if kk == k {
			return r
		}
	}
	return '?'
}
