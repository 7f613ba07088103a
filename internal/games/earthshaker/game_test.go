package earthshaker

import (
	"errors"
	"strings"
	"testing"

	"github.com/Aleks-Che/earth-shaker-zx/internal/config"
	"github.com/Aleks-Che/earth-shaker-zx/internal/core"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/engine"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/levels"
	"github.com/Aleks-Che/earth-shaker-zx/internal/registry"
)

var (
	corridor = []string{
		"#####",
		"#P*E#",
		"#####",
	}
	wormRow = []string{
		"######",
		"#Pw*E#",
		"######",
	}
)

func instantConfig() config.EarthshakerConfig {
	cfg := config.DefaultEarthshakerConfig()
	cfg.Movement.Smooth = false
	return cfg
}

// newTestGame starts a campaign over hand-made layouts.
func newTestGame(t *testing.T, cfg config.EarthshakerConfig, layouts ...[]string) *Game {
	t.Helper()
	var lvls []levels.Level
	for i, rows := range layouts {
		layout, err := engine.ParseLayout(rows)
		if err != nil {
			t.Fatalf("layout %d: %v", i, err)
		}
		lvls = append(lvls, levels.Level{ID: "t", Name: "Test", Layout: layout})
	}

	g := New(IDPack, "Test", cfg, OpenSource(levels.NewPack(lvls)))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, StartLevel: 1})
	if err := g.Err(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

func frame(dt float64, actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.DT = dt
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func playerTile(t *testing.T, g *Game) engine.Coord {
	t.Helper()
	snap, ok := g.Snapshot()
	if !ok {
		t.Fatal("no level loaded")
	}
	return snap.Player.Tile
}

func TestGameClearLevelAndWin(t *testing.T) {
	g := newTestGame(t, instantConfig(), corridor)

	res := g.Step(frame(0.05, core.ActionRight))
	if res.State.Score != 10 {
		t.Fatalf("score after crystal = %d, expected 10", res.State.Score)
	}
	if res.Cleared != nil {
		t.Fatal("level cleared too early")
	}

	res = g.Step(frame(0.05, core.ActionRight))
	if res.Cleared == nil {
		t.Fatal("expected level clear on reaching the exit")
	}
	if res.Cleared.Level != 1 || res.Cleared.Crystals != 1 || res.Cleared.Smooth {
		t.Errorf("summary = %+v", *res.Cleared)
	}
	if res.Cleared.Seconds <= 0 {
		t.Errorf("summary seconds = %v, expected > 0", res.Cleared.Seconds)
	}
	// 10 for the crystal, 100 + 50*1 for the clear
	if res.State.Score != 160 {
		t.Errorf("score = %d, expected 160", res.State.Score)
	}
	if !res.State.Paused {
		t.Error("banner should report the game as paused")
	}

	for range 4 {
		res = g.Step(frame(0.5))
	}
	if !res.State.Won || !res.State.GameOver {
		t.Errorf("state after last level = %+v, expected won", res.State)
	}
}

func TestGameAdvancesToNextLevel(t *testing.T) {
	g := newTestGame(t, instantConfig(), corridor, wormRow)

	g.Step(frame(0.05, core.ActionRight))
	g.Step(frame(0.05, core.ActionRight))
	for range 4 {
		g.Step(frame(0.5))
	}

	st := g.State()
	if st.Level != 2 || st.GameOver {
		t.Fatalf("state = %+v, expected level 2 in progress", st)
	}
	if st.Lives != 3 {
		t.Errorf("lives = %d, expected 3", st.Lives)
	}
	if got := playerTile(t, g); got != engine.C(1, 1) {
		t.Errorf("player at %v, expected fresh start (1,1)", got)
	}

	// Worm then crystal on level 2
	g.Step(frame(0.05, core.ActionRight))
	res := g.Step(frame(0.05, core.ActionRight))
	if res.State.Score != 160+5+10 {
		t.Errorf("score = %d, expected 175", res.State.Score)
	}
}

func TestGameGiveUpCostsLife(t *testing.T) {
	g := newTestGame(t, instantConfig(), corridor)

	g.Step(frame(0.05, core.ActionRight))
	g.Step(frame(0.05, core.ActionGiveUp))
	if !g.LastTick().Has(engine.EventPlayerDestroyed) {
		t.Fatal("expected PlayerDestroyed event")
	}
	if g.State().Lives != 3 {
		t.Error("life lost before the destroyed pause ended")
	}

	// Input while destroyed is ignored
	g.Step(frame(0.1, core.ActionRight))
	if got := playerTile(t, g); got != engine.C(2, 1) {
		t.Errorf("destroyed player moved to %v", got)
	}

	g.Step(frame(2.0))
	st := g.State()
	if st.Lives != 2 || st.GameOver {
		t.Fatalf("state = %+v, expected 2 lives", st)
	}
	if got := playerTile(t, g); got != engine.C(1, 1) {
		t.Errorf("player at %v after retry, expected (1,1)", got)
	}
	if snap, _ := g.Snapshot(); snap.RemainingCrystals != 1 {
		t.Error("retry should restore the level")
	}
	if st.Score != 10 {
		t.Errorf("score = %d, expected to keep 10 across retries", st.Score)
	}
}

func TestGameOverWhenLivesRunOut(t *testing.T) {
	cfg := instantConfig()
	cfg.Campaign.Lives = 1
	g := newTestGame(t, cfg, corridor)

	g.Step(frame(0.05, core.ActionGiveUp))
	res := g.Step(frame(2.0))
	if !res.State.GameOver || res.State.Won || res.State.Lives != 0 {
		t.Errorf("state = %+v, expected game over", res.State)
	}

	// Further frames change nothing
	g.Step(frame(0.05, core.ActionRight))
	if got := playerTile(t, g); got != engine.C(1, 1) {
		t.Errorf("player moved after game over to %v", got)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, instantConfig(), corridor)

	res := g.Step(frame(0.05, core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	g.Step(frame(0.05, core.ActionRight))
	if got := playerTile(t, g); got != engine.C(1, 1) {
		t.Errorf("player moved while paused to %v", got)
	}

	g.Step(frame(0.05, core.ActionPause))
	g.Step(frame(0.05, core.ActionRight))
	if got := playerTile(t, g); got != engine.C(2, 1) {
		t.Errorf("player at %v after resume, expected (2,1)", got)
	}
}

func TestGameToggleModeCarriesToNextLevel(t *testing.T) {
	g := newTestGame(t, instantConfig(), corridor, wormRow)

	g.Step(frame(0.05, core.ActionToggleMode))
	if snap, _ := g.Snapshot(); !snap.Smooth {
		t.Fatal("expected smooth movement after toggle")
	}
	if !g.LastTick().Has(engine.EventSettingsChanged) {
		t.Error("expected SettingsChanged event")
	}

	// Smooth step takes 0.2s per tile
	for range 10 {
		g.Step(frame(0.05, core.ActionRight))
	}
	for range 10 {
		g.Step(frame(0.05, core.ActionRight))
		if g.State().Paused {
			break
		}
	}
	for range 4 {
		g.Step(frame(0.5))
	}

	if g.State().Level != 2 {
		t.Fatalf("level = %d, expected 2", g.State().Level)
	}
	if snap, _ := g.Snapshot(); !snap.Smooth {
		t.Error("movement mode reset on new level")
	}
}

func TestGameGeneratedCampaign(t *testing.T) {
	g := New(IDCaves, "Caves", config.DefaultEarthshakerConfig(), OpenGenerated)

	tests := []struct {
		start int
		want  int
	}{
		{0, 1},
		{3, 3},
		{99, 10},
	}
	for _, tt := range tests {
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, StartLevel: tt.start})
		if err := g.Err(); err != nil {
			t.Fatalf("Reset failed: %v", err)
		}
		if got := g.State().Level; got != tt.want {
			t.Errorf("StartLevel %d: level = %d, expected %d", tt.start, got, tt.want)
		}
	}

	if g.LevelCount() != 10 {
		t.Errorf("LevelCount = %d, expected 10", g.LevelCount())
	}
	snap, _ := g.Snapshot()
	if snap.W != 15 || snap.H != 12 {
		t.Errorf("level size = %dx%d, expected 15x12", snap.W, snap.H)
	}
}

func TestGameSeedOverrideIsDeterministic(t *testing.T) {
	run := func() string {
		g := New(IDCaves, "Caves", config.DefaultEarthshakerConfig(), OpenGenerated)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, StartLevel: 2, Seed: 77})
		snap, _ := g.Snapshot()
		grid := engine.NewGrid(snap.W, snap.H)
		for i, tile := range snap.Tiles {
			grid.SetTile(engine.C(i%snap.W, i/snap.W), tile)
		}
		var spawns []engine.Spawn
		for _, o := range snap.Objects {
			spawns = append(spawns, engine.Spawn{Kind: o.Kind, At: o.Tile})
		}
		return strings.Join(engine.FormatLayout(grid, spawns, snap.Player.Tile), "\n")
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different levels:\n%s\nvs\n%s", a, b)
	}
}

func TestGenParamsFunc(t *testing.T) {
	cfg := config.DefaultEarthshakerConfig()

	params := GenParamsFunc(cfg, 0)
	first, last := params(1), params(10)
	if first.Crystals != 8 || last.Crystals != 15 {
		t.Errorf("crystals = %d..%d, expected 8..15", first.Crystals, last.Crystals)
	}
	if last.StoneWallProbability <= first.StoneWallProbability {
		t.Error("stone walls should grow with level")
	}
	if first.Seed != 0 {
		t.Errorf("seed = %d, expected 0 to keep per-level seeds", first.Seed)
	}

	seeded := GenParamsFunc(cfg, 7)(2)
	if seeded.Seed != 7+levels.SeedForLevel(2) {
		t.Errorf("seed = %d, expected offset per-level seed", seeded.Seed)
	}
}

func TestGameLoadError(t *testing.T) {
	boom := errors.New("boom")
	g := New(IDPack, "Broken", config.DefaultEarthshakerConfig(), func(config.EarthshakerConfig) (levels.Source, error) {
		return nil, boom
	})
	g.Reset(core.DefaultConfig())

	if !errors.Is(g.Err(), boom) {
		t.Fatalf("Err = %v, expected wrapped boom", g.Err())
	}
	if !g.State().GameOver {
		t.Error("failed load should end the game")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot start campaign") {
		t.Error("error screen not rendered")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, instantConfig(), corridor)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"@@", "<>", "Level 1/1", "Crystals 0/1", "Mode Grid", "Lives 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.Step(frame(0.05, core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, instantConfig(), corridor)
	g.Resize(20, 5)

	res := g.Step(frame(0.05, core.ActionRight))
	if !res.State.Paused {
		t.Error("too-small screen should pause")
	}
	if got := playerTile(t, g); got != engine.C(1, 1) {
		t.Errorf("player moved on a too-small screen to %v", got)
	}

	screen := core.NewScreen(20, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message missing")
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		pos    engine.Vec
		cx, cy int
	}{
		{engine.Vec{X: 0, Y: 0}, 0, 0},
		{engine.Vec{X: 64, Y: 128}, 2, 2},
		{engine.Vec{X: 96, Y: 64}, 3, 1},   // Half way between tiles 1 and 2
		{engine.Vec{X: 80, Y: 100}, 3, 2},  // Rows snap to the nearest tile
		{engine.Vec{X: 70, Y: 70}, 2, 1},
	}
	for _, tt := range tests {
		cx, cy := project(tt.pos, 64)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("project(%v) = (%d,%d), expected (%d,%d)", tt.pos, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestRegisteredCampaigns(t *testing.T) {
	for _, id := range []string{IDCaves, IDClassic} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
			continue
		}
		g, err := registry.Create(id, config.DefaultEarthshakerConfig())
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		g.Reset(core.DefaultConfig())
		if es, ok := g.(*Game); !ok || es.Err() != nil {
			t.Errorf("%s failed to start", id)
		}
	}
}
