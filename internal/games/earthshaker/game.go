// Package earthshaker implements the Earthshaker campaign: a run of levels
// played on the engine, with lives, score, pause and the level-clear banner.
package earthshaker

import (
	"errors"
	"fmt"
	"math"

	"github.com/Aleks-Che/earth-shaker-zx/internal/config"
	"github.com/Aleks-Che/earth-shaker-zx/internal/core"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/engine"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/levels"
	"github.com/Aleks-Che/earth-shaker-zx/internal/registry"
)

// Registered game IDs, also used as score keys.
const (
	IDCaves   = "earthshaker"
	IDClassic = "earthshaker_classic"
	IDPack    = "earthshaker_pack"
)

// OpenFunc builds the level source for a campaign from the active configuration.
type OpenFunc func(cfg config.EarthshakerConfig) (levels.Source, error)

func init() {
	registry.Register(IDCaves, func(cfg config.EarthshakerConfig) registry.Game {
		return New(IDCaves, "Earthshaker: Caves", cfg, OpenGenerated)
	})
	registry.Register(IDClassic, func(cfg config.EarthshakerConfig) registry.Game {
		return New(IDClassic, "Earthshaker: Classic", cfg, OpenClassic)
	})
}

// RegisterPack registers a level pack loaded at runtime under IDPack.
func RegisterPack(name string, src levels.Source) {
	title := "Earthshaker: " + name
	registry.Register(IDPack, func(cfg config.EarthshakerConfig) registry.Game {
		return New(IDPack, title, cfg, OpenSource(src))
	})
}

// OpenGenerated opens a campaign of max_level generated caves scaled by difficulty.
func OpenGenerated(cfg config.EarthshakerConfig) (levels.Source, error) {
	return levels.NewGeneratedSource(cfg.Campaign.MaxLevel, GenParamsFunc(cfg, 0)), nil
}

// OpenClassic opens the built-in hand-made pack.
func OpenClassic(config.EarthshakerConfig) (levels.Source, error) {
	return levels.ClassicPack()
}

// OpenSource wraps an already loaded source, such as a pack read from disk.
func OpenSource(src levels.Source) OpenFunc {
	return func(config.EarthshakerConfig) (levels.Source, error) { return src, nil }
}

// GenParamsFunc returns generator parameters per level from the generator and
// difficulty sections. A non-zero seed offsets every per-level seed.
func GenParamsFunc(cfg config.EarthshakerConfig, seed int64) levels.ParamsFunc {
	d := config.NewDifficultyManager(cfg.Difficulty)
	gen := cfg.Generator
	return func(n int) levels.GenParams {
		p := levels.DefaultGenParams()
		p.Width = gen.Width
		p.Height = gen.Height
		p.EarthProbability = gen.EarthProbability
		p.StoneWallProbability = d.StoneWallProbability(gen.StoneWallProbability, n)
		p.Crystals = d.Crystals(gen.Crystals, n)
		p.Stones = d.Stones(gen.Stones, n)
		p.Worms = d.Worms(gen.Worms, n)
		p.Bubbles = gen.Bubbles
		p.MaxAttempts = gen.MaxAttempts
		if seed != 0 {
			p.Seed = seed + levels.SeedForLevel(n)
		}
		return p
	}
}

// Game is one Earthshaker campaign run.
type Game struct {
	id    string
	title string
	cfg   config.EarthshakerConfig
	open  OpenFunc
	diff  *config.DifficultyManager

	source  levels.Source
	current levels.Level
	level   *engine.Level
	loadErr error

	number int // Current campaign level, 1-based
	score  int
	lives  int
	smooth bool
	tick   uint64

	levelTime   float64 // Seconds spent on the current attempt
	bannerTime  float64 // Seconds left on the level-clear banner
	lastBonus   int
	levelClear  bool
	gameOver    bool
	won         bool
	paused      bool
	tooSmall    bool
	screenW     int
	screenH     int
	lastResult  engine.TickResult
	destroyedAt float64 // Seconds the destroyed-player pause has run
}

// New creates a campaign. Nothing is loaded until Reset.
func New(id, title string, cfg config.EarthshakerConfig, open OpenFunc) *Game {
	return &Game{
		id:     id,
		title:  title,
		cfg:    cfg,
		open:   open,
		diff:   config.NewDifficultyManager(cfg.Difficulty),
		smooth: cfg.Movement.Smooth,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset starts the campaign over at cfg.StartLevel.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.score = 0
	g.lives = max(g.cfg.Campaign.Lives, 1)
	g.levelClear = false
	g.gameOver = false
	g.won = false
	g.paused = false
	g.loadErr = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	open := g.open
	if cfg.Seed != 0 && g.id == IDCaves {
		seed := cfg.Seed
		open = func(c config.EarthshakerConfig) (levels.Source, error) {
			return levels.NewGeneratedSource(c.Campaign.MaxLevel, GenParamsFunc(c, seed)), nil
		}
	}
	src, err := open(g.cfg)
	if err != nil {
		g.fail(fmt.Errorf("opening levels: %w", err))
		return
	}
	if src.Count() == 0 {
		g.fail(errors.New("campaign has no levels"))
		return
	}
	g.source = src

	g.number = core.Clamp(max(cfg.StartLevel, 1), 1, src.Count())
	g.loadLevel()
}

// Resize updates the screen dimensions without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.gameOver = true
}

// loadLevel starts a fresh attempt at the current level number.
func (g *Game) loadLevel() {
	lvl, err := g.source.Level(g.number)
	if err != nil {
		g.fail(err)
		return
	}
	g.current = lvl
	g.level = lvl.NewSession(g.settingsFor(g.number))
	g.levelTime = 0
	g.destroyedAt = 0
	g.lastResult = engine.TickResult{}
	g.checkScreenSize()
}

// settingsFor returns the engine settings for level n, before level overrides.
func (g *Game) settingsFor(n int) engine.Settings {
	s := g.cfg.EngineSettings()
	s.SmoothMovement = g.smooth
	s.GravityInterval = g.diff.GravityInterval(s.GravityInterval, n)
	return s
}

// checkScreenSize checks if the screen is large enough for the current level.
func (g *Game) checkScreenSize() {
	w, h := 15, 12
	if g.level != nil {
		w, h = g.level.Width(), g.level.Height()
	}
	minW := max(w*cellsPerTile, minHUDWidth)
	minH := h + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the campaign by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	dt := in.DT
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}

	if g.loadErr != nil || g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.levelClear {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelClear {
		g.bannerTime -= dt
		if g.bannerTime <= 0 {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// The cave keeps settling for one banner length after the player is destroyed.
	if !g.level.PlayerAlive() {
		g.lastResult = g.level.Tick(engine.TickInput{DT: dt})
		g.destroyedAt += dt
		if g.destroyedAt >= g.cfg.Campaign.ClearBannerSeconds {
			g.loseLife()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionGiveUp) {
		g.level.DestroyPlayer()
	}

	intent := engine.FirstIntent(heldDirs(in)...)
	res := g.level.Tick(engine.TickInput{
		DT:           dt,
		Intent:       intent,
		JustPressed:  intent != engine.DirNone && in.Has(actionFor(intent)),
		ToggleSmooth: in.Has(core.ActionToggleMode),
	})
	g.lastResult = res
	g.smooth = g.level.Settings().SmoothMovement
	g.levelTime += dt

	g.score += res.Count(engine.EventCrystalCollected) * g.cfg.Campaign.CrystalPoints
	g.score += res.Count(engine.EventWormEaten) * g.cfg.Campaign.WormPoints

	if res.Has(engine.EventLevelComplete) {
		summary := g.clearLevel()
		return core.StepResult{State: g.State(), Cleared: summary}
	}
	return core.StepResult{State: g.State()}
}

// clearLevel awards the level bonus and shows the banner.
func (g *Game) clearLevel() *core.LevelSummary {
	c := g.cfg.Campaign
	g.lastBonus = c.LevelClearBase + c.LevelClearPerLevel*g.number
	g.score += g.lastBonus
	g.levelClear = true
	g.bannerTime = c.ClearBannerSeconds

	return &core.LevelSummary{
		Level:    g.number,
		Crystals: g.level.Player().Collected,
		Seconds:  g.levelTime,
		Smooth:   g.smooth,
	}
}

// advanceLevel moves to the next level once the banner is over.
func (g *Game) advanceLevel() {
	g.levelClear = false
	if g.number >= g.source.Count() {
		g.won = true
		return
	}
	g.number++
	g.loadLevel()
}

// loseLife restarts the level or ends the run.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		return
	}
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.number,
		Lives:    g.lives,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.levelClear,
	}
}

// Snapshot returns the state of the running level. ok is false when no level is loaded.
func (g *Game) Snapshot() (snap engine.Snapshot, ok bool) {
	if g.level == nil {
		return engine.Snapshot{}, false
	}
	return g.level.Snapshot(), true
}

// LastTick returns the engine result of the most recent simulated frame.
func (g *Game) LastTick() engine.TickResult { return g.lastResult }

// LevelCount returns the number of levels in the campaign, 0 before Reset.
func (g *Game) LevelCount() int {
	if g.source == nil {
		return 0
	}
	return g.source.Count()
}

// Err returns the error that stopped the campaign from loading, if any.
func (g *Game) Err() error { return g.loadErr }

var dirActions = []struct {
	action core.Action
	dir    engine.Dir
}{
	{core.ActionLeft, engine.DirLeft},
	{core.ActionRight, engine.DirRight},
	{core.ActionUp, engine.DirUp},
	{core.ActionDown, engine.DirDown},
}

// heldDirs lists the held directions in FirstIntent order.
func heldDirs(in core.InputFrame) []engine.Dir {
	var dirs []engine.Dir
	for _, da := range dirActions {
		if in.IsHeld(da.action) {
			dirs = append(dirs, da.dir)
		}
	}
	return dirs
}

func actionFor(d engine.Dir) core.Action {
	for _, da := range dirActions {
		if da.dir == d {
			return da.action
		}
	}
	return core.ActionNone
}
