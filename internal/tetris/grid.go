package tetris

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Grid is the playfield of locked cells. Its dimensions are fixed at
// creation; every row always has exactly Cols() cells.
type Grid struct {
	cols  int
	rows  int
	cells [][]core.Color
}

// NewGrid creates a grid of empty cells.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows, cells: make([][]core.Color, rows)}
	for y := range g.cells {
		g.cells[y] = make([]core.Color, cols)
	}
	return g
}

// GridFromRows builds a grid from explicit rows. All rows must have the
// same length.
func GridFromRows(rows [][]core.Color) *Grid {
	g := &Grid{rows: len(rows), cells: make([][]core.Color, len(rows))}
	if len(rows) > 0 {
		g.cols = len(rows[0])
	}
	for y, row := range rows {
		g.cells[y] = append([]core.Color(nil), row...)
	}
	return g
}

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// At returns the colour at (x, y), or ColorEmpty outside the grid.
func (g *Grid) At(x, y int) core.Color {
	if !g.inBounds(x, y) {
		return core.ColorEmpty
	}
	return g.cells[y][x]
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Collides reports whether p shifted by (dx, dy) would leave the grid
// horizontally, pass the floor, or overlap a locked cell. Cells above the
// top edge are only bounded horizontally so pieces can spawn partly hidden.
func (g *Grid) Collides(p Piece, dx, dy int) bool {
	for _, b := range p.Blocks() {
		x, y := b.X+dx, b.Y+dy
		if x < 0 || x >= g.cols || y >= g.rows {
			return true
		}
		if y >= 0 && g.cells[y][x] != core.ColorEmpty {
			return true
		}
	}
	return false
}

// Lock writes the piece colour into every occupied cell that lies inside
// the grid. Cells outside are skipped.
func (g *Grid) Lock(p Piece) {
	for _, b := range p.Blocks() {
		if g.inBounds(b.X, b.Y) {
			g.cells[b.Y][b.X] = p.Color
		}
	}
}

// ClearFullRows returns a new grid without the full rows, keeping the order
// of the rest and padding the top with as many empty rows as were removed.
func (g *Grid) ClearFullRows() (*Grid, int) {
	kept := make([][]core.Color, 0, g.rows)
	for _, row := range g.cells {
		if !rowFull(row) {
			kept = append(kept, append([]core.Color(nil), row...))
		}
	}

	cleared := g.rows - len(kept)
	out := &Grid{cols: g.cols, rows: g.rows, cells: make([][]core.Color, 0, g.rows)}
	for i := 0; i < cleared; i++ {
		out.cells = append(out.cells, make([]core.Color, g.cols))
	}
	out.cells = append(out.cells, kept...)
	return out, cleared
}

func rowFull(row []core.Color) bool {
	for _, c := range row {
		if c == core.ColorEmpty {
			return false
		}
	}
	return true
}

// Lines renders each row as a string, '.' for empty and the palette index
// digit (or '#' above 9) for locked cells.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	for y, row := range g.cells {
		var sb strings.Builder
		for _, c := range row {
			switch {
			case c == core.ColorEmpty:
				sb.WriteByte('.')
			case c < 10:
				sb.WriteByte(byte('0' + c))
			default:
				sb.WriteByte('#')
			}
		}
		out[y] = sb.String()
	}
	return out
}
