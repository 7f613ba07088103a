package engine

import (
	"errors"
	"slices"
	"testing"
)

func TestParseLayout(t *testing.T) {
	rows := []string{
		"######",
		"#P.*E#",
		"#Xobw#",
		"######",
	}
	lay, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}

	if lay.Grid.W != 6 || lay.Grid.H != 4 {
		t.Errorf("size = %dx%d, expected 6x4", lay.Grid.W, lay.Grid.H)
	}
	if lay.Start != C(1, 1) {
		t.Errorf("Start = %v, expected (1,1)", lay.Start)
	}

	tiles := map[Coord]Tile{
		C(0, 0): TileWall,
		C(1, 1): TileEmpty,
		C(2, 1): TileEarth,
		C(3, 1): TileEmpty,
		C(4, 1): TileExit,
		C(1, 2): TileStoneWall,
		C(2, 2): TileEmpty,
	}
	for c, want := range tiles {
		if got := lay.Grid.TileAt(c); got != want {
			t.Errorf("tile %v = %v, expected %v", c, got, want)
		}
	}

	want := []Spawn{
		{Kind: KindCrystal, At: C(3, 1)},
		{Kind: KindStone, At: C(2, 2)},
		{Kind: KindBubble, At: C(3, 2)},
		{Kind: KindWorm, At: C(4, 2)},
	}
	if !slices.Equal(lay.Spawns, want) {
		t.Errorf("Spawns = %v, expected %v", lay.Spawns, want)
	}

	if got := FormatLayout(lay.Grid, lay.Spawns, lay.Start); !slices.Equal(got, rows) {
		t.Errorf("FormatLayout = %q, expected %q", got, rows)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, ErrEmptyLayout},
		{"empty row", []string{""}, ErrEmptyLayout},
		{"ragged", []string{"###", "#P", "###"}, ErrRaggedLayout},
		{"unknown", []string{"###", "#P?", "###"}, ErrUnknownSymbol},
		{"no player", []string{"###", "# #", "###"}, ErrNoPlayer},
		{"two players", []string{"####", "#PP#", "####"}, ErrManyPlayers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.rows)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, expected %v", err, tt.want)
			}
		})
	}
}
