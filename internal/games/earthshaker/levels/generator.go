package levels

import (
	"fmt"
	"math/rand"

	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/engine"
)

// GenParams configures the random level generator.
type GenParams struct {
	Width  int
	Height int
	Seed   int64

	// Tile fill for the interior outside the start zone
	EarthProbability     float64 // Chance of Earth
	StoneWallProbability float64 // Chance of StoneWall, on top of EarthProbability

	// Object counts; placement gives up on a kind after MaxAttempts tries
	Crystals    int
	Stones      int
	Worms       int
	Bubbles     int
	MaxAttempts int

	StartZone int // Tiles x<=StartZone && y<=StartZone are kept Empty
}

// DefaultGenParams returns the standard 15x12 level parameters.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:                15,
		Height:               12,
		EarthProbability:     0.3,
		StoneWallProbability: 0.05,
		Crystals:             8,
		Stones:               5,
		Worms:                3,
		Bubbles:              2,
		MaxAttempts:          100,
		StartZone:            2,
	}
}

// SeedForLevel returns the generator seed for a campaign level number.
func SeedForLevel(n int) int64 {
	return int64(n) * 12345
}

// Generate builds a random level. The same params always give the same level.
func Generate(p GenParams) (*engine.Layout, error) {
	if p.Width < 5 || p.Height < 5 {
		return nil, fmt.Errorf("level too small: %dx%d", p.Width, p.Height)
	}
	if p.StartZone < 1 {
		p.StartZone = 1
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 100
	}

	rng := rand.New(rand.NewSource(p.Seed))
	g := engine.NewWalledGrid(p.Width, p.Height, engine.TileEmpty)
	exit := engine.C(p.Width-2, p.Height-2)

	for y := 1; y < p.Height-1; y++ {
		for x := 1; x < p.Width-1; x++ {
			c := engine.C(x, y)
			switch {
			case x <= p.StartZone && y <= p.StartZone:
				// start zone stays empty
			case c == exit:
				g.SetTile(c, engine.TileExit)
			default:
				r := rng.Float64()
				if r < p.EarthProbability {
					g.SetTile(c, engine.TileEarth)
				} else if r < p.EarthProbability+p.StoneWallProbability {
					g.SetTile(c, engine.TileStoneWall)
				}
			}
		}
	}

	layout := &engine.Layout{Grid: g, Start: engine.C(1, 1)}
	taken := make(map[engine.Coord]bool)
	place := func(kind engine.Kind, count int) {
		placed := 0
		for attempt := 0; placed < count && attempt < p.MaxAttempts; attempt++ {
			c := engine.C(3+rng.Intn(p.Width-4), 1+rng.Intn(p.Height-2))
			if g.TileAt(c) != engine.TileEmpty || taken[c] {
				continue
			}
			taken[c] = true
			layout.Spawns = append(layout.Spawns, engine.Spawn{Kind: kind, At: c})
			placed++
		}
	}
	place(engine.KindCrystal, p.Crystals)
	place(engine.KindStone, p.Stones)
	place(engine.KindWorm, p.Worms)
	place(engine.KindBubble, p.Bubbles)

	return layout, nil
}

// GenerateLevel generates campaign level n with the given params.
// A zero params seed is replaced by SeedForLevel(n).
func GenerateLevel(n int, p GenParams) (Level, error) {
	if p.Seed == 0 {
		p.Seed = SeedForLevel(n)
	}
	layout, err := Generate(p)
	if err != nil {
		return Level{}, fmt.Errorf("generating level %d: %w", n, err)
	}
	return Level{
		ID:     fmt.Sprintf("gen%02d", n),
		Name:   fmt.Sprintf("Cave %d", n),
		Number: n,
		Seed:   p.Seed,
		Layout: layout,
	}, nil
}
