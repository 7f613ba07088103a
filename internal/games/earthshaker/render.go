package earthshaker

import (
	"fmt"
	"math"

	"github.com/Aleks-Che/earth-shaker-zx/internal/core"
	"github.com/Aleks-Che/earth-shaker-zx/internal/games/earthshaker/engine"
)

const (
	cellsPerTile = 2 // Terminal cells per tile horizontally
	hudHeight    = 2
	footerHeight = 1
	minHUDWidth  = 44
)

// glyph is the two-cell look of a tile or entity.
type glyph struct {
	text  string
	color core.Color
}

var tileGlyphs = map[engine.Tile]glyph{
	engine.TileEmpty:     {"  ", core.ColorDefault},
	engine.TileEarth:     {"░░", core.ColorBrown},
	engine.TileWall:      {"▓▓", core.ColorRed},
	engine.TileStoneWall: {"██", core.ColorGray},
	engine.TileExit:      {"[]", core.ColorGray},
}

var kindGlyphs = map[engine.Kind]glyph{
	engine.KindStone:   {"()", core.ColorWhite},
	engine.KindCrystal: {"<>", core.ColorBrightCyan},
	engine.KindWorm:    {"~~", core.ColorGreen},
	engine.KindBubble:  {"oo", core.ColorCyan},
}

var (
	playerGlyph    = glyph{"@@", core.ColorBrightYellow}
	deadGlyph      = glyph{"**", core.ColorRed}
	openExitGlyph  = glyph{"[]", core.ColorBrightWhite}
	openExitGlyph2 = glyph{"][", core.ColorBrightYellow}
)

// Render draws the level, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.level == nil {
		return
	}

	snap := g.level.Snapshot()
	boardW := snap.W * cellsPerTile
	boardX := max((g.screenW-boardW)/2, 0)
	boardY := hudHeight

	hudW := max(boardW, minHUDWidth)
	g.renderHUD(dst, snap, max((g.screenW-hudW)/2, 0), hudW)
	g.renderBoard(dst, snap, boardX, boardY)
	g.renderFooter(dst, boardY+snap.H)

	board := core.NewRect(boardX, boardY, boardW, snap.H)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Cannot start campaign", core.ColorRed)
	dst.DrawTextCentered(y, g.loadErr.Error(), core.ColorDefault)
	dst.DrawTextCentered(y+2, "Press Q to quit", core.ColorGray)
}

// renderHUD draws level, crystals, mode, lives and score above the board.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot, hudX, hudW int) {
	title := fmt.Sprintf("Level %d/%d  %s", g.number, g.LevelCount(), g.current.Name)
	dst.DrawTextColored(hudX, 0, title, core.ColorBrightWhite)

	mode := "Grid"
	if snap.Smooth {
		mode = "Smooth"
	}
	right := fmt.Sprintf("Lives %d  Score %d", g.lives, g.score)
	dst.DrawTextColored(max(hudX+hudW-len(right), hudX), 0, right, core.ColorYellow)

	crystals := fmt.Sprintf("Crystals %d/%d  Left %d  Mode %s",
		snap.Player.Collected, snap.TotalCrystals, snap.RemainingCrystals, mode)
	dst.DrawTextColored(hudX, 1, crystals, core.ColorBrightCyan)
}

// renderBoard draws tiles, then objects, then the player.
func (g *Game) renderBoard(dst *core.Screen, snap engine.Snapshot, boardX, boardY int) {
	exitOpen := snap.RemainingCrystals == 0
	for y := range snap.H {
		for x := range snap.W {
			t := snap.TileAt(engine.C(x, y))
			gl := tileGlyphs[t]
			if t == engine.TileExit && exitOpen {
				gl = openExitGlyph
				if (g.tick/8)%2 == 1 {
					gl = openExitGlyph2
				}
			}
			drawGlyph(dst, boardX+x*cellsPerTile, boardY+y, gl)
		}
	}

	for _, o := range snap.Objects {
		if !o.Active {
			continue
		}
		cx, cy := project(o.Pos, snap.TileSize)
		drawGlyph(dst, boardX+cx, boardY+cy, kindGlyphs[o.Kind])
	}

	p := snap.Player
	gl := playerGlyph
	if !p.Alive {
		gl = deadGlyph
	}
	cx, cy := project(p.Pos, snap.TileSize)
	drawGlyph(dst, boardX+cx, boardY+cy, gl)
}

// project maps a world position to board cells. Columns have half-tile
// resolution so a moving body visibly passes between tiles; rows snap to
// the nearest tile.
func project(pos engine.Vec, tileSize float64) (cx, cy int) {
	cx = int(math.Round(pos.X / tileSize * cellsPerTile))
	cy = int(math.Round(pos.Y / tileSize))
	return cx, cy
}

func drawGlyph(dst *core.Screen, x, y int, gl glyph) {
	dst.DrawTextColored(x, y, gl.text, gl.color)
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	dst.DrawTextCentered(y, "Arrows move P pause K give up M mode Q quit", core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.won:
		g.drawOverlay(dst, board, "ALL CAVES CLEARED!", fmt.Sprintf("Final score: %d", g.score), "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, board, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.levelClear:
		next := "Final level complete!"
		if g.number < g.LevelCount() {
			next = fmt.Sprintf("Next: Level %d", g.number+1)
		}
		g.drawOverlay(dst, board, "LEVEL CLEAR!", fmt.Sprintf("Bonus +%d", g.lastBonus), next)
	case !g.level.PlayerAlive():
		msg := fmt.Sprintf("%d lives left", g.lives-1)
		if g.lives <= 1 {
			msg = "No lives left"
		}
		g.drawOverlay(dst, board, "DESTROYED", msg)
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a boxed message centered on the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}
