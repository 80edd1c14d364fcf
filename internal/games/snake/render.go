package snake

import (
	"fmt"

	"github.com/arcbox/arcbox/internal/core"
)

var foodGlyphs = [foodKinds]struct {
	r rune
	c core.Color
}{
	{'*', core.ColorRed},
	{'%', core.ColorYellow},
	{'@', core.ColorMagenta},
	{'&', core.ColorCyan},
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := g.cfg.Board.Width
	h := g.cfg.Board.Height

	boxX := (dst.Width() - w - 2) / 2
	if boxX < 0 {
		boxX = 0
	}
	boxY := (dst.Height() - h - 2) / 2
	if boxY < 2 {
		boxY = 2
	}

	hud := fmt.Sprintf(" Snake — Score: %d  Best: %d  Speed: %s", g.score, core.Max(g.best, g.score), g.presetName)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	dst.DrawBox(core.NewRect(boxX, boxY, w+2, h+2))

	if g.food.X >= 0 {
		glyph := foodGlyphs[g.foodKind]
		dst.SetCell(boxX+1+g.food.X, boxY+1+g.food.Y, glyph.r, glyph.c)
	}

	for i, seg := range g.snake {
		r := 'o'
		if i == 0 {
			r = 'O'
		}
		dst.SetCell(boxX+1+seg.X, boxY+1+seg.Y, r, core.ColorGreen)
	}

	switch g.status {
	case StatusIdle:
		drawOverlay(dst, "Snake", "Press Enter to start")
	case StatusCountdown:
		drawOverlay(dst, fmt.Sprintf("%d", g.countLeft), "Get ready")
	case StatusPaused:
		drawOverlay(dst, "Paused", "Press P to continue")
	case StatusEnded:
		drawOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
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
