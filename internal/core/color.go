package core

// Color is an index into the game palette.
// Frontends resolve the index to a concrete terminal or RGBA colour.
type Color uint8

// ColorEmpty marks an unoccupied cell and doubles as the default text colour.
const ColorEmpty Color = 0

// Reserved indices above the piece palette, used for board chrome.
const (
	ColorOutline Color = 250 // Grid lines and board frame
	ColorText    Color = 251 // HUD text
	ColorAccent  Color = 252 // Overlay titles
)

// MaxPaletteSize is the largest palette, empty entry included, whose
// indices stay clear of the reserved chrome colours.
const MaxPaletteSize = int(ColorOutline)

// IsPiece reports whether c refers to a palette entry that a piece can carry.
func (c Color) IsPiece() bool {
	return c != ColorEmpty && c < ColorOutline
}
