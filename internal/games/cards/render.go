package cards

import (
	"fmt"

	"github.com/arcbox/arcbox/internal/core"
)

const (
	cardW = 5 // "[ 7]" plus a gap
	cardH = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Memory Match — Pairs: %d  Moves: %d  Time: %s", g.pairs, g.moves, formatTime(g.ElapsedSeconds()))
	if g.bestMoves > 0 {
		hud += fmt.Sprintf("  Best: %d moves / %s", g.bestMoves, formatTime(g.bestTime))
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	rows := (len(g.deck) + g.cols - 1) / g.cols
	gridW := g.cols * cardW
	gridH := rows * cardH
	offX := (dst.Width() - gridW) / 2
	if offX < 0 {
		offX = 0
	}
	offY := (dst.Height() - gridH) / 2
	if offY < 2 {
		offY = 2
	}

	for i, card := range g.deck {
		x := offX + (i%g.cols)*cardW
		y := offY + (i/g.cols)*cardH
		g.drawCard(dst, x, y, i, card)
	}

	if g.phase == PhaseWon {
		drawOverlay(dst, "You Win!",
			fmt.Sprintf("%d moves in %s  |  Press R to restart", g.moves, formatTime(g.ElapsedSeconds())))
	}
}

func (g *Game) drawCard(dst *core.Screen, x, y, idx int, card Card) {
	var face string
	var color core.Color
	switch {
	case card.Matched:
		face = fmt.Sprintf("[%2d]", card.Value)
		color = core.ColorGreen
	case card.FaceUp:
		face = fmt.Sprintf("[%2d]", card.Value)
		color = core.ColorYellow
	default:
		face = "[ ?]"
		color = core.ColorDefault
	}
	if idx == g.cursor && g.phase != PhaseWon {
		color = core.ColorCyan
		dst.DrawTextColored(x, y+1, "^^^^", color)
	}
	dst.DrawTextColored(x, y, face, color)
}

func formatTime(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
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
