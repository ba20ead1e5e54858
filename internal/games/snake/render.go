package snake

import (
	"fmt"

	"github.com/alcherk/snake-arena/internal/core"
)

const hudHeight = 1

// Glyphs
const (
	glyphPlayerHead = '@'
	glyphPlayerBody = 'o'
	glyphEnemyHead  = 'X'
	glyphEnemyBody  = 'x'
	glyphFood       = '*'
)

// Render draws the HUD, the board box, food and both snakes.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.board.W+2, g.board.H+hudHeight+2))
		return
	}

	dst.DrawBox(core.NewRect(g.offsetX, g.offsetY, g.board.W+2, g.board.H+2), core.ColorGray)

	for _, p := range g.food.Positions() {
		g.setCell(dst, p, glyphFood, core.ColorBrightYellow)
	}

	enemyHead, enemyBody := core.ColorBrightRed, core.ColorRed
	if !g.enemy.Alive() {
		enemyHead, enemyBody = core.ColorGray, core.ColorGray
	}
	g.renderSnake(dst, g.enemy.Body(), glyphEnemyHead, glyphEnemyBody, enemyHead, enemyBody)
	g.renderSnake(dst, g.player.Body(), glyphPlayerHead, glyphPlayerBody, core.ColorBrightGreen, core.ColorGreen)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d  Round: %d  Speed: %dms",
		g.Title(), g.score, g.player.Len(), g.round, g.interval.Milliseconds())
	if last, ok := g.LastResult(); ok {
		hud += fmt.Sprintf("  Last: %d (%s)", last.Score, last.Cause)
	}
	if g.autopilot != nil {
		hud += "  [auto]"
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// renderSnake draws body segments tail first so the head stays on top.
func (g *Game) renderSnake(dst *core.Screen, body []core.Point, head, seg rune, headColor, segColor core.Color) {
	for i := len(body) - 1; i >= 0; i-- {
		if i == 0 {
			g.setCell(dst, body[i], head, headColor)
		} else {
			g.setCell(dst, body[i], seg, segColor)
		}
	}
}

// setCell draws a board cell inside the box. Off-board cells are skipped.
func (g *Game) setCell(dst *core.Screen, p core.Point, r rune, c core.Color) {
	if !g.board.Contains(p) {
		return
	}
	dst.SetColored(g.offsetX+1+p.X, g.offsetY+1+p.Y, r, c)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawHLine(box.X+1, y, boxW-2, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
