package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Piece is the active falling shape. X and Y anchor the top-left corner of
// the shape's bounding box in grid coordinates.
type Piece struct {
	Shape Shape
	Color core.Color
	X, Y  int
}

// Spawn draws a shape and a colour uniformly at random and places the piece
// horizontally centred on the top row. paletteSize counts the reserved empty
// entry, so colours come from [1, paletteSize).
func Spawn(catalog []Shape, cols, paletteSize int, rng Rand) Piece {
	shape := catalog[rng.Intn(len(catalog))]
	color := core.Color(1 + rng.Intn(paletteSize-1))
	return Piece{
		Shape: shape,
		Color: color,
		X:     cols/2 - shape.Width()/2,
		Y:     0,
	}
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy with the shape turned clockwise at the same anchor.
// It does not check collision; callers validate the candidate first.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Blocks returns the absolute grid coordinates of every occupied cell.
func (p Piece) Blocks() []Point {
	blocks := make([]Point, 0, 4)
	for y := 0; y < p.Shape.Height(); y++ {
		for x := 0; x < p.Shape.Width(); x++ {
			if p.Shape.Filled(x, y) {
				blocks = append(blocks, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return blocks
}
