package escape

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/maze-escape/internal/core"
	"github.com/vovakirdan/maze-escape/internal/maze"
)

const (
	hudHeight = 3 // Title line, stats line, spacer

	wallRune   = '█'
	exitRune   = '▒'
	playerRune = '@'
)

// layout picks the cell width and centers the maze below the HUD.
// Cells are two columns wide when the maze fits, which keeps them
// roughly square in a terminal.
func (g *Game) layout() {
	if g.session == nil || g.session.Maze() == nil {
		return
	}
	m := g.session.Maze()

	g.cellW = 2
	if m.Width()*2 > g.screenW {
		g.cellW = 1
	}

	g.tooSmall = m.Width()*g.cellW > g.screenW || m.Height()+hudHeight > g.screenH
	g.originX = (g.screenW - m.Width()*g.cellW) / 2
	g.originY = hudHeight + core.Max(0, (g.screenH-hudHeight-m.Height())/2)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dst.DrawTextCentered(g.screenH/2, "Level failed to load", core.ColorAlert)
		dst.DrawTextCentered(g.screenH/2+1, g.loadErr.Error(), core.ColorDefault)
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderMaze(dst)
	g.renderPlayer(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorAlert)

	m := g.session.Maze()
	hint := fmt.Sprintf("Need %dx%d", m.Width(), m.Height()+hudHeight)
	dst.DrawTextCentered(y+1, hint, core.ColorDefault)
}

// renderHUD draws the level label, timer and score.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.session.Label(), core.ColorHUD)

	var progress string
	if g.mode == ModeCampaign {
		progress = fmt.Sprintf("Level %d/%d", g.levelIndex+1, len(g.levels))
	} else {
		progress = fmt.Sprintf("Cleared: %d", g.levelIndex)
	}
	stats := fmt.Sprintf("Time: %ds   Score: %d   %s", g.session.Elapsed(), g.score, progress)
	dst.DrawTextCentered(1, stats, core.ColorDefault)
}

// renderMaze draws walls and the exit.
func (g *Game) renderMaze(dst *core.Screen) {
	m := g.session.Maze()
	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			var (
				ch    rune
				color core.Color
			)
			switch m.At(r, c) {
			case maze.Wall:
				ch, color = wallRune, core.ColorWall
			case maze.Exit:
				ch, color = exitRune, core.ColorExit
			default:
				continue
			}
			x := g.originX + c*g.cellW
			for i := 0; i < g.cellW; i++ {
				dst.SetColored(x+i, g.originY+r, ch, color)
			}
		}
	}
}

// renderPlayer draws the player at the interpolated animation position.
// The horizontal position is scaled by the cell width, so two-column
// cells show a half-cell step mid-move.
func (g *Game) renderPlayer(dst *core.Screen) {
	ax, ay := g.session.AnimPosition()
	x := g.originX + core.Round(ax*float64(g.cellW))
	y := g.originY + core.Round(ay)
	for i := 0; i < g.cellW; i++ {
		dst.SetColored(x+i, y, playerRune, core.ColorPlayer)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawOverlay(dst, core.ColorHUD, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, core.ColorExit,
			"CAMPAIGN COMPLETE!",
			fmt.Sprintf("Final score: %d", g.score),
			"Press R to play again")
	case g.levelCleared:
		res := g.lastResult
		lines := []string{
			"ESCAPED!",
			fmt.Sprintf("Time: %ds  %s", res.Seconds, res.Tier.Symbol()),
			fmt.Sprintf("+%d points", g.lastPoints),
		}
		lines = append(lines, g.nextHint())
		g.drawOverlay(dst, core.ColorExit, lines...)
	}
}

// nextHint describes what follows the cleared level.
func (g *Game) nextHint() string {
	if g.mode == ModeEndless {
		w, h := g.cfg.Endless.Size(g.levelIndex + 1)
		return fmt.Sprintf("Next maze: %dx%d (Enter)", w, h)
	}
	if g.levelIndex >= len(g.levels)-1 {
		return "Final level complete! (Enter)"
	}
	return fmt.Sprintf("Next: %s (Enter)", g.levels[g.levelIndex+1].Label())
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.CenteredRect(g.screenW, g.screenH, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, color)

	for i, line := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(line))/2
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}
