package tanks

import (
	"fmt"

	"github.com/arcbox/arcbox/internal/core"
)

func dirGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '▲'
	case core.DirRight:
		return '▶'
	case core.DirDown:
		return '▼'
	case core.DirLeft:
		return '◀'
	default:
		return '?'
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	size := g.cfg.Board.Size

	// Cells are two characters wide to compensate for terminal character
	// aspect ratio.
	arenaW := size*2 + 2
	arenaH := size + 2
	offX := (dst.Width() - arenaW - 20) / 2
	if offX < 0 {
		offX = 0
	}
	offY := (dst.Height() - arenaH) / 2
	if offY < 0 {
		offY = 0
	}

	dst.DrawBox(core.NewRect(offX, offY, arenaW, arenaH))

	cell := func(p core.Point, r rune, c core.Color) {
		x := offX + 1 + p.X*2
		y := offY + 1 + p.Y
		dst.SetCell(x, y, r, c)
		dst.SetCell(x+1, y, r, c)
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := core.Point{X: x, Y: y}
			switch g.grid[y][x] {
			case TerrainBrick:
				cell(p, '▒', core.ColorOrange)
			case TerrainSteel:
				cell(p, '█', core.ColorWhite)
			case TerrainBase:
				cell(p, '⌂', core.ColorBrightYellow)
			}
		}
	}

	for _, pu := range g.powerUps {
		cell(pu.Pos, pu.Kind.Glyph(), core.ColorBrightGreen)
	}

	for _, e := range g.enemies {
		if e.Alive {
			cell(e.Pos, dirGlyph(e.Dir), core.ColorRed)
		}
	}
	if g.player.Alive {
		c := core.ColorBrightYellow
		if g.shield > 0 {
			c = core.ColorBrightCyan
		}
		cell(g.player.Pos, dirGlyph(g.player.Dir), c)
	}

	for _, b := range g.bullets {
		x := offX + 1 + b.Pos.X*2
		y := offY + 1 + b.Pos.Y
		dst.SetCell(x, y, '•', core.ColorBrightWhite)
	}

	// Side panel
	panelX := offX + arenaW + 3
	dst.DrawText(panelX, offY, fmt.Sprintf("Score %d", g.score))
	dst.DrawText(panelX, offY+1, fmt.Sprintf("Best  %d", core.Max(g.best, g.score)))
	dst.DrawText(panelX, offY+3, fmt.Sprintf("Level %d", g.level))
	dst.DrawText(panelX, offY+4, fmt.Sprintf("Kills %d/%d", g.killsThisLevel, g.cfg.Board.KillsPerLevel))
	dst.DrawText(panelX, offY+5, fmt.Sprintf("Lives %d", g.lives))
	dst.DrawText(panelX, offY+6, fmt.Sprintf("Shield %d/%d", g.shield, g.cfg.Player.ShieldMax))
	if g.rapidLeft > 0 {
		dst.DrawTextColored(panelX, offY+7, "RAPID FIRE", core.ColorBrightGreen)
	}
	if g.comfort {
		dst.DrawTextColored(panelX, offY+9, "comfort", core.ColorGray)
	}

	switch {
	case g.over:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		drawOverlay(dst, "Paused", "Press P to continue")
	case !g.player.Alive:
		drawOverlay(dst, "Destroyed", "Respawning...")
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
