// Package config provides YAML-based game configuration loading and
// difficulty presets for blockfall.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// GameConfig contains all configuration for the game and its frontends.
type GameConfig struct {
	Window  WindowConfig `yaml:"window"`
	Grid    GridConfig   `yaml:"grid"`
	Timing  TimingConfig `yaml:"timing"`
	Palette []string     `yaml:"palette"` // Hex colours, index 0 is empty
	Outline string       `yaml:"outline"` // Cell outline colour
}

// WindowConfig defines the pixel canvas the grid is derived from.
type WindowConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// GridConfig optionally overrides the derived grid size. Zero means derive.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TimingConfig defines gravity and frame pacing.
type TimingConfig struct {
	FallIntervalMs  int `yaml:"fall_interval_ms"`
	TickRate        int `yaml:"tick_rate"`
	MaxFrameDeltaMs int `yaml:"max_frame_delta_ms"` // Cap on one frame's elapsed time
}

// Cols returns the playfield width in cells.
func (c GameConfig) Cols() int {
	if c.Grid.Cols > 0 {
		return c.Grid.Cols
	}
	if c.Window.CellSize <= 0 {
		return 0
	}
	return c.Window.Width / c.Window.CellSize
}

// Rows returns the playfield height in cells.
func (c GameConfig) Rows() int {
	if c.Grid.Rows > 0 {
		return c.Grid.Rows
	}
	if c.Window.CellSize <= 0 {
		return 0
	}
	return c.Window.Height / c.Window.CellSize
}

// FallInterval returns the gravity period.
func (c GameConfig) FallInterval() time.Duration {
	return time.Duration(c.Timing.FallIntervalMs) * time.Millisecond
}

// MaxFrameDelta returns the cap applied to a single frame's elapsed time.
func (c GameConfig) MaxFrameDelta() time.Duration {
	return time.Duration(c.Timing.MaxFrameDeltaMs) * time.Millisecond
}

// Validate checks the preconditions the game relies on.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Cols() <= 0 || c.Rows() <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Cols(), c.Rows()))
	}
	if c.Window.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.Window.CellSize))
	}
	if c.Timing.FallIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("fall_interval_ms must be positive, got %d", c.Timing.FallIntervalMs))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if len(c.Palette) < 2 {
		errs = append(errs, fmt.Errorf("palette needs the empty colour and at least one piece colour, got %d entries", len(c.Palette)))
	}
	if last := len(c.Palette) - 1; last > math.MaxUint8 || (last > 0 && !core.Color(last).IsPiece()) {
		errs = append(errs, fmt.Errorf("palette has %d entries, at most %d fit beside the board colours", len(c.Palette), core.MaxPaletteSize))
	}
	for i, hex := range c.Palette {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("palette[%d] %q: %w", i, hex, err))
		}
	}
	if _, err := colorful.Hex(c.Outline); err != nil {
		errs = append(errs, fmt.Errorf("outline %q: %w", c.Outline, err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Resolve converts the file configuration into the immutable game config.
func (c GameConfig) Resolve() tetris.Config {
	return tetris.Config{
		Cols:         c.Cols(),
		Rows:         c.Rows(),
		FallInterval: c.FallInterval(),
		PaletteSize:  len(c.Palette),
	}
}

// RGBA converts a hex colour to an opaque color.RGBA.
// Invalid input yields opaque black; Validate reports it earlier.
func RGBA(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
