package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2  // Terminal columns per grid cell
	panelWidth = 18 // Status panel to the right of the board
	panelGap   = 2
)

// Layout describes where the board lands on a terminal screen.
type Layout struct {
	Board     core.Rect // Frame including the border
	Panel     core.Rect // Zero width when the panel does not fit
	TooSmall  bool
	RequiredW int
	RequiredH int
}

// LayoutFor computes the board and panel placement for a screen size.
func LayoutFor(cols, rows, screenW, screenH int) Layout {
	boardW := cols*cellWidth + 2
	boardH := rows + 2
	l := Layout{RequiredW: boardW, RequiredH: boardH}
	if screenW < boardW || screenH < boardH {
		l.TooSmall = true
		return l
	}

	totalW := boardW
	withPanel := screenW >= boardW+panelGap+panelWidth
	if withPanel {
		totalW += panelGap + panelWidth
	}

	area := core.NewRect(0, 0, screenW, screenH).Centered(totalW, boardH)
	l.Board = core.NewRect(area.X, area.Y, boardW, boardH)
	if withPanel {
		l.Panel = core.NewRect(l.Board.Right()+panelGap, area.Y, panelWidth, boardH)
	}
	return l
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l := LayoutFor(g.cfg.Cols, g.cfg.Rows, dst.Width(), dst.Height())
	if l.TooSmall {
		g.renderTooSmall(dst, l)
		return
	}

	dst.DrawBox(l.Board, core.ColorOutline)
	inner := l.Board.Inner()
	originX, originY := inner.X, inner.Y

	for y := 0; y < g.grid.Rows(); y++ {
		for x := 0; x < g.grid.Cols(); x++ {
			drawCell(dst, originX, originY, x, y, g.grid.At(x, y))
		}
	}

	if g.state != StateQuit {
		for _, b := range g.piece.Blocks() {
			if b.Y >= 0 {
				drawCell(dst, originX, originY, b.X, b.Y, g.piece.Color)
			}
		}
	}

	if l.Panel.W > 0 {
		g.renderPanel(dst, l.Panel)
	}

	if g.state == StateGameOver {
		g.renderOverlay(dst, l.Board, "GAME OVER", fmt.Sprintf("Lines: %d", g.lines), "R restart  Q quit")
	}
}

// drawCell paints one grid cell: a solid block for locked or falling
// cells, a faint dot for empty ones.
func drawCell(dst *core.Screen, originX, originY, x, y int, c core.Color) {
	sx := originX + x*cellWidth
	sy := originY + y
	if c == core.ColorEmpty {
		dst.SetColored(sx, sy, ' ', core.ColorOutline)
		dst.SetColored(sx+1, sy, '·', core.ColorOutline)
		return
	}
	dst.SetColored(sx, sy, '█', c)
	dst.SetColored(sx+1, sy, '█', c)
}

func (g *Game) renderPanel(dst *core.Screen, r core.Rect) {
	secs := int(g.elapsed.Seconds())
	dst.DrawTextColored(r.X, r.Y+1, "BLOCKFALL", core.ColorAccent)
	dst.DrawText(r.X, r.Y+3, fmt.Sprintf("Lines   %d", g.lines))
	dst.DrawText(r.X, r.Y+4, fmt.Sprintf("Pieces  %d", g.pieces))
	dst.DrawText(r.X, r.Y+5, fmt.Sprintf("Time    %02d:%02d", secs/60, secs%60))
}

// renderOverlay draws a framed message box centred over area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 4
	box := area.Centered(boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorEmpty)
	dst.DrawBox(box, core.ColorAccent)
	for i, line := range lines {
		c := core.ColorText
		if i == 0 {
			c = core.ColorAccent
		}
		x := box.X + (boxW-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+2+i, line, c)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen, l Layout) {
	h := dst.Height()
	dst.DrawTextCentered(h/2-1, "Terminal too small", core.ColorAccent)
	dst.DrawTextCentered(h/2, fmt.Sprintf("Need %dx%d, have %dx%d", l.RequiredW, l.RequiredH, dst.Width(), h), core.ColorText)
	dst.DrawTextCentered(h/2+1, "Resize or pass --cols/--rows", core.ColorText)
}
