package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // score line + separator
	cellWidth = 2 // terminal columns per board cell
)

// gridSize returns the number of board cells along each axis.
func (g *Game) gridSize() (cols, rows int) {
	step := g.cfg.Movement.Step
	return 2*g.bounds.XLimit/step + 1, 2*g.bounds.YLimit/step + 1
}

// requiredSize returns the smallest screen that fits the HUD and the board.
func (g *Game) requiredSize() (w, h int) {
	cols, rows := g.gridSize()
	return cols*cellWidth + 2, rows + 2 + hudHeight
}

// cellFor maps a board position to a grid cell, rounding off-grid
// positions to the nearest cell. Row 0 is the top of the board.
func (g *Game) cellFor(p core.Vec) (col, row int) {
	step := float64(g.cfg.Movement.Step)
	col = int(math.Round(float64(p.X+g.bounds.XLimit) / step))
	row = int(math.Round(float64(g.bounds.YLimit-p.Y) / step))
	return col, row
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	w, h := g.requiredSize()
	if g.tooSmall || dst.Width() < w || dst.Height() < h {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
		return
	}

	board := core.NewRect((dst.Width()-w)/2, hudHeight, w, h-hudHeight)
	dst.DrawBox(board, core.ColorGray)

	g.drawCell(dst, board, g.food.Position(), "()", core.ColorBrightRed)

	segs := g.body.segs
	for i := len(segs) - 1; i > 0; i-- {
		g.drawCell(dst, board, segs[i], "██", core.ColorGreen)
	}
	g.drawCell(dst, board, segs[0], "██", core.ColorBrightGreen)

	switch {
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", causeText(g.cause))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawCell draws a two-column glyph for p, clipped to the board interior.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, p core.Vec, glyph string, c core.Color) {
	cols, rows := g.gridSize()
	col, row := g.cellFor(p)
	if !core.NewRect(0, 0, cols, rows).Contains(col, row) {
		return
	}
	dst.DrawTextColored(board.X+1+col*cellWidth, board.Y+1+row, glyph, c)
}

// renderHUD draws the score readout and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	current, high := g.ledger.Snapshot()
	dst.DrawTextCenteredColored(0, fmt.Sprintf("Score: %d  High Score: %d", current, high), core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}

func causeText(c Cause) string {
	switch c {
	case CauseSelf:
		return "Ran into yourself"
	case CauseWall:
		return "Hit the wall"
	default:
		return "Restarting"
	}
}
