package engine

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

var busyLayout = []string{
	"###############",
	"#P  .o*o .*  E#",
	"#...o**o. w.. #",
	"# o . *  o .  #",
	"#.. ob  *. o .#",
	"#   ..  o  *  #",
	"#.o.*. ...  o #",
	"#  ..  b . *  #",
	"###############",
}

// scriptedInputs produces a reproducible stream of ticks with presses,
// holds and releases.
func scriptedInputs(seed int64, n int) []TickInput {
	rng := rand.New(rand.NewSource(seed))
	dirs := []Dir{DirNone, DirLeft, DirRight, DirUp, DirDown}

	out := make([]TickInput, 0, n)
	held := DirNone
	for range n {
		in := TickInput{DT: 0.02 + rng.Float64()*0.04}
		switch r := rng.Intn(10); {
		case r < 3:
			held = dirs[1+rng.Intn(4)]
			in.JustPressed = true
		case r < 4:
			held = DirNone
		}
		in.Intent = held
		out = append(out, in)
	}
	return out
}

func TestOccupancyInvariantHolds(t *testing.T) {
	for _, mode := range movementModes {
		t.Run(mode.name, func(t *testing.T) {
			l := newTestLevel(t, mode.smooth, busyLayout...)
			for i, in := range scriptedInputs(42, 3000) {
				l.Tick(in)
				if err := l.CheckOccupancy(); err != nil {
					t.Fatalf("tick %d: %v", i, err)
				}
			}
			if !l.grid.BorderIntact() {
				t.Error("border changed during play")
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	for _, mode := range movementModes {
		t.Run(mode.name, func(t *testing.T) {
			l1 := newTestLevel(t, mode.smooth, busyLayout...)
			l2 := newTestLevel(t, mode.smooth, busyLayout...)

			for _, in := range scriptedInputs(7, 1500) {
				r1 := l1.Tick(in)
				r2 := l2.Tick(in)
				if !reflect.DeepEqual(r1, r2) {
					t.Fatalf("tick %d: results differ: %+v vs %+v", r1.Tick, r1, r2)
				}
			}

			if !reflect.DeepEqual(l1.Snapshot(), l2.Snapshot()) {
				t.Error("snapshots differ after identical input")
			}
		})
	}
}

func TestMovementModesSettleAlike(t *testing.T) {
	rows := []string{
		"###########",
		"#P  o o*o #",
		"#   *o w  #",
		"#  o . o  #",
		"#   X     #",
		"#  .  X . #",
		"#         #",
		"###########",
	}
	instant := newTestLevel(t, false, rows...)
	smooth := newTestLevel(t, true, rows...)

	for range 200 {
		instant.Tick(TickInput{DT: 0.05})
		smooth.Tick(TickInput{DT: 0.05})

		a, b := instant.Objects(), smooth.Objects()
		for i := range a {
			if a[i].Moving || b[i].Moving {
				continue
			}
			if a[i].Tile != b[i].Tile || a[i].Fall != b[i].Fall {
				t.Fatalf("object %d: instant %v %v, smooth %v %v",
					i, a[i].Tile, a[i].Fall, b[i].Tile, b[i].Fall)
			}
		}
	}

	a, b := instant.Snapshot(), smooth.Snapshot()
	for i := range a.Objects {
		if a.Objects[i].Tile != b.Objects[i].Tile || a.Objects[i].Pos != b.Objects[i].Pos {
			t.Errorf("object %d rests at %v in instant mode, %v in smooth mode",
				i, a.Objects[i].Tile, b.Objects[i].Tile)
		}
	}
	if !reflect.DeepEqual(a.Tiles, b.Tiles) {
		t.Error("grids differ between movement modes")
	}
}

func TestSnapshotCounters(t *testing.T) {
	l := newTestLevel(t, false, busyLayout...)
	s := l.Snapshot()

	if s.W != 15 || s.H != 9 {
		t.Errorf("size = %dx%d, expected 15x9", s.W, s.H)
	}
	if s.TotalCrystals != 9 || s.RemainingCrystals != 9 {
		t.Errorf("crystals = %d/%d, expected 9/9", s.RemainingCrystals, s.TotalCrystals)
	}
	if s.Player.Tile != C(1, 1) || !s.Player.Alive {
		t.Errorf("player = %+v, expected alive at (1,1)", s.Player)
	}
	if s.TileAt(C(13, 1)) != TileExit || s.TileAt(C(-1, 0)) != TileWall {
		t.Error("snapshot TileAt mismatch")
	}

	s.Tiles[s.W+2] = TileExit
	if l.TileAt(C(2, 1)) == TileExit {
		t.Error("snapshot shares tile storage with the level")
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	l := newTestLevel(t, true,
		"#####",
		"#P  #",
		"#####",
	)
	l.Tick(TickInput{DT: 0.01, Intent: DirRight, JustPressed: true})
	before := l.player.Pos
	l.Tick(TickInput{DT: -5})
	if l.player.Pos != before {
		t.Errorf("Pos = %v after negative dt, expected %v", l.player.Pos, before)
	}
}

func TestNonFiniteDeltaIgnored(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLevel(t, true,
				"#####",
				"#P  #",
				"#####",
			)
			l.Tick(TickInput{DT: 0.01, Intent: DirRight, JustPressed: true})
			before := l.player.Pos
			l.Tick(TickInput{DT: tt.dt})
			if l.player.Pos != before {
				t.Fatalf("Pos = %v after dt %v, expected %v", l.player.Pos, tt.dt, before)
			}

			for range 100 {
				l.Tick(TickInput{DT: 0.05})
			}
			if l.player.Moving() {
				t.Error("player still moving after the move duration")
			}
			if got := l.player.Tile(); got != C(2, 1) {
				t.Errorf("player tile = %v, expected %v", got, C(2, 1))
			}
		})
	}
}

func TestSnapshotLayout(t *testing.T) {
	l := newTestLevel(t, false, busyLayout...)
	if got := l.Snapshot().Layout().String(); got != strings.Join(busyLayout, "\n") {
		t.Errorf("fresh snapshot layout differs:\n%s", got)
	}

	rows := []string{
		"#####",
		"#Po #",
		"#.. #",
		"#####",
	}
	l = newTestLevel(t, false, rows...)
	l.Tick(TickInput{DT: 0.01, Intent: DirDown, JustPressed: true})
	want := strings.Join([]string{
		"#####",
		"# o #",
		"#P. #",
		"#####",
	}, "\n")
	if got := l.Snapshot().Layout().String(); got != want {
		t.Errorf("layout after digging:\n%s\nexpected:\n%s", got, want)
	}
}
