// Package core holds the types shared by the game logic and its frontends:
// screen cells, input frames, runtime settings and layout rectangles.
// Nothing here imports Bubble Tea or Ebiten.
package core

// Rect is a rectangle in screen cells. X and Y are the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r. Right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns r shrunk by a one-cell border on every side.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// Centered returns a w by h rectangle centred in r. The result may
// extend past r when it is larger.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}
