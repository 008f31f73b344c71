package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

const hudHeight = 2 // Status line plus separator

// Cell glyphs.
const (
	runeFilled = '█'
	runeEmpty  = '·'
)

// Palette.
const (
	colorHead  = core.ColorRed
	colorBody  = core.ColorYellow
	colorFood  = core.ColorBlue
	colorEmpty = core.ColorDarkGray
	colorFrame = core.ColorGray
	colorDim   = core.ColorGray
	colorLabel = core.ColorBrightWhite
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	board := g.boardRect(dst)
	if board.X < 0 || board.Bottom() > dst.Height() {
		g.renderMessage(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(board, colorFrame)
	inner := core.NewRect(board.X+1, board.Y+1, board.W-2, board.H-2)
	g.renderBoard(dst, inner)

	state := g.engine.State()
	if state != StatePlaying {
		dst.Tint(inner, colorDim)
		label := " " + state.Label() + " "
		cx, cy := inner.Center()
		dst.DrawText(cx-len(label)/2, cy, label, colorLabel)
	}
}

// boardRect returns the framed board area, centered horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	b := g.engine.Bounds()
	w := b.W*g.cfg.Render.CellWidth + 2
	h := b.H + 2
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	e := g.engine
	hud := fmt.Sprintf(" Snake  Length: %d/%d  Speed: %.1f/s  %s",
		e.Len(), e.Bounds().Area(), g.updateRate(), e.State())
	dst.DrawText(0, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', colorFrame)
}

// renderBoard draws empty cells, food and the snake inside the frame.
func (g *Game) renderBoard(dst *core.Screen, inner core.Rect) {
	b := g.engine.Bounds()
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			g.drawCell(dst, inner, grid.C(x, y), runeEmpty, colorEmpty)
		}
	}

	g.drawCell(dst, inner, g.engine.Food(), runeFilled, colorFood)

	// Tail first so the head stays visible when segments overlap. Reads the
	// arena directly; Body() would copy it every frame.
	body := g.engine.body
	for i := len(body) - 1; i >= 0; i-- {
		color := colorBody
		if i == 0 {
			color = colorHead
		}
		g.drawCell(dst, inner, body[i], runeFilled, color)
	}
}

// drawCell paints one board cell, CellWidth columns wide. Empty cells only
// mark their first column.
func (g *Game) drawCell(dst *core.Screen, inner core.Rect, c grid.Cell, r rune, color core.Color) {
	cw := g.cfg.Render.CellWidth
	sx := inner.X + c.X*cw
	sy := inner.Y + c.Y
	for i := range cw {
		ch := r
		if r == runeEmpty && i > 0 {
			ch = ' '
		}
		dst.SetCell(sx+i, sy, ch, color)
	}
}

// renderMessage draws a centered two-line message box.
func (g *Game) renderMessage(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, colorFrame)
	dst.DrawTextCentered(box.Y+1, line1, colorLabel)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
