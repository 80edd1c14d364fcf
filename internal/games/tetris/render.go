package tetris

import (
	"fmt"

	"github.com/arcbox/arcbox/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	rows := g.cfg.Board.Rows
	cols := g.cfg.Board.Cols

	// Each board cell is two characters wide to compensate for terminal
	// character aspect ratio.
	wellW := cols*2 + 2
	wellH := rows + 2
	wellX := (dst.Width() - wellW - 18) / 2
	if wellX < 0 {
		wellX = 0
	}
	wellY := (dst.Height() - wellH) / 2
	if wellY < 0 {
		wellY = 0
	}

	dst.DrawBox(core.NewRect(wellX, wellY, wellW, wellH))

	// Committed blocks
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if v := g.board.Cell(x, y); v != 0 {
				g.drawCell(dst, wellX+1+x*2, wellY+1+y, '█', pieceColors[v-1])
			}
		}
	}

	// Ghost projection below the active piece
	if !g.over {
		ghostY := g.GhostY()
		if ghostY != g.y {
			g.drawShape(dst, g.active, wellX+1+g.x*2, wellY+1+ghostY, '░', core.ColorGray)
		}
		g.drawShape(dst, g.active, wellX+1+g.x*2, wellY+1+g.y, '█', pieceColors[g.activeIdx])
	}

	// Side panel
	panelX := wellX + wellW + 3
	dst.DrawText(panelX, wellY, "Next")
	g.drawPreview(dst, g.nextIdx, panelX, wellY+1)
	dst.DrawText(panelX, wellY+5, "Hold")
	if g.heldIdx >= 0 {
		g.drawPreview(dst, g.heldIdx, panelX, wellY+6)
	} else {
		dst.DrawTextColored(panelX, wellY+6, "(empty)", core.ColorGray)
	}
	dst.DrawText(panelX, wellY+10, fmt.Sprintf("Score %d", g.score))
	dst.DrawText(panelX, wellY+11, fmt.Sprintf("Best  %d", core.Max(g.best, g.score)))
	dst.DrawText(panelX, wellY+12, fmt.Sprintf("Level %d", g.level))
	dst.DrawText(panelX, wellY+13, fmt.Sprintf("Lines %d", g.lines))

	switch {
	case g.over:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawShape draws a shape bitmap with 2-wide cells.
func (g *Game) drawShape(dst *core.Screen, s Shape, px, py int, r rune, c core.Color) {
	for row, cells := range s {
		for col, v := range cells {
			if v == 0 {
				continue
			}
			y := py + row
			if y < 0 {
				continue // Above the visible well
			}
			g.drawCell(dst, px+col*2, y, r, c)
		}
	}
}

func (g *Game) drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetCell(x, y, r, c)
	dst.SetCell(x+1, y, r, c)
}

// drawPreview draws a piece thumbnail for the next/hold panels.
func (g *Game) drawPreview(dst *core.Screen, idx, px, py int) {
	s := shapeDefs[idx]
	for row, cells := range s {
		for col, v := range cells {
			if v != 0 {
				g.drawCell(dst, px+col*2, py+row, '█', pieceColors[idx])
			}
		}
	}
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
