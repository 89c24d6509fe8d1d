package tetris

import "time"

// Config is the immutable game configuration, resolved once at startup and
// held by the game for its whole life.
type Config struct {
	Cols         int
	Rows         int
	FallInterval time.Duration // Time between gravity steps
	PaletteSize  int           // Palette entries including the reserved empty colour
}

// DefaultConfig matches a 500x800 window with 30px cells and eight colours.
func DefaultConfig() Config {
	return Config{
		Cols:         500 / 30,
		Rows:         800 / 30,
		FallInterval: 500 * time.Millisecond,
		PaletteSize:  8,
	}
}
