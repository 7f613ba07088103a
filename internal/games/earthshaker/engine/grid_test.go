package engine

import "testing"

func TestTileAtOutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(4, 3)
	for _, c := range []Coord{C(-1, 0), C(0, -1), C(4, 0), C(0, 3), C(100, 100)} {
		if got := g.TileAt(c); got != TileWall {
			t.Errorf("TileAt(%v) = %v, expected Wall", c, got)
		}
	}
	if got := g.TileAt(C(1, 1)); got != TileEmpty {
		t.Errorf("TileAt(1,1) = %v, expected Empty", got)
	}
}

func TestSetTileOutOfBoundsIgnored(t *testing.T) {
	g := NewGrid(3, 3)
	before := g.Clone()
	g.SetTile(C(-1, 1), TileEarth)
	g.SetTile(C(3, 1), TileEarth)
	if !g.Equal(before) {
		t.Error("out-of-bounds SetTile changed the grid")
	}

	g.SetTile(C(1, 1), TileEarth)
	if g.TileAt(C(1, 1)) != TileEarth {
		t.Error("SetTile did not change an in-bounds tile")
	}
	if g.Equal(before) {
		t.Error("Equal ignores tile contents")
	}
}

func TestNewWalledGrid(t *testing.T) {
	g := NewWalledGrid(15, 12, TileEarth)
	if !g.BorderIntact() {
		t.Error("walled grid border not intact")
	}
	if got, want := g.Count(TileWall), 2*15+2*10; got != want {
		t.Errorf("Count(Wall) = %d, expected %d", got, want)
	}
	if got, want := g.Count(TileEarth), 13*10; got != want {
		t.Errorf("Count(Earth) = %d, expected %d", got, want)
	}

	g.SetTile(C(0, 5), TileEmpty)
	if g.BorderIntact() {
		t.Error("BorderIntact missed a hole in the border")
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := NewWalledGrid(5, 5, TileEmpty)
	c := g.Clone()
	c.SetTile(C(2, 2), TileExit)
	if g.TileAt(C(2, 2)) != TileEmpty {
		t.Error("mutating a clone changed the original")
	}
}

func TestFirstIntentOrder(t *testing.T) {
	tests := []struct {
		in   []Dir
		want Dir
	}{
		{nil, DirNone},
		{[]Dir{DirNone}, DirNone},
		{[]Dir{DirDown, DirUp}, DirUp},
		{[]Dir{DirDown, DirRight, DirLeft}, DirLeft},
		{[]Dir{DirUp, DirRight}, DirRight},
		{[]Dir{DirNone, DirDown}, DirDown},
	}
	for _, tt := range tests {
		if got := FirstIntent(tt.in...); got != tt.want {
			t.Errorf("FirstIntent(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
