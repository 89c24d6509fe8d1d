package tetris

import "strings"

// Shape is an immutable occupancy pattern: an ordered list of rows, each an
// ordered list of cells. Methods never modify the receiver's backing arrays.
type Shape struct {
	name  string
	cells [][]bool
}

// NewShape builds a shape from rows of 0/1 values.
func NewShape(name string, rows ...[]int) Shape {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, v := range row {
			cells[y][x] = v != 0
		}
	}
	return Shape{name: name, cells: cells}
}

// The seven canonical tetrominoes in spawn orientation.
var (
	ShapeI = NewShape("I", []int{1, 1, 1, 1})
	ShapeO = NewShape("O", []int{1, 1}, []int{1, 1})
	ShapeT = NewShape("T", []int{0, 1, 0}, []int{1, 1, 1})
	ShapeJ = NewShape("J", []int{1, 0, 0}, []int{1, 1, 1})
	ShapeL = NewShape("L", []int{0, 0, 1}, []int{1, 1, 1})
	ShapeS = NewShape("S", []int{1, 1, 0}, []int{0, 1, 1})
	ShapeZ = NewShape("Z", []int{0, 1, 1}, []int{1, 1, 0})
)

// Catalog returns the shapes a piece can spawn with, in draw order.
func Catalog() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeT, ShapeJ, ShapeL, ShapeS, ShapeZ}
}

// Name returns the tetromino letter.
func (s Shape) Name() string {
	return s.name
}

// Width returns the number of columns in the pattern.
func (s Shape) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

// Height returns the number of rows in the pattern.
func (s Shape) Height() int {
	return len(s.cells)
}

// Filled reports whether the local cell (x, y) is occupied.
func (s Shape) Filled(x, y int) bool {
	if y < 0 || y >= len(s.cells) || x < 0 || x >= len(s.cells[y]) {
		return false
	}
	return s.cells[y][x]
}

// Rotate returns the pattern turned 90° clockwise: the row order is reversed
// and columns are read off as the new rows. The bounding box swaps, so an
// I-piece goes from 1x4 to 4x1.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make([][]bool, w)
	for x := 0; x < w; x++ {
		out[x] = make([]bool, h)
		for y := 0; y < h; y++ {
			out[x][y] = s.cells[h-1-y][x]
		}
	}
	return Shape{name: s.name, cells: out}
}

// String renders the pattern with '#' and '.' rows separated by '/'.
func (s Shape) String() string {
	rows := make([]string, len(s.cells))
	for y, row := range s.cells {
		var sb strings.Builder
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "/")
}
