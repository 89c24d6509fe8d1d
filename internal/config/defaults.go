package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: a 500x800 canvas of
// 30px cells (16x26), 500ms gravity at 60 frames per second, eight colours.
func DefaultConfig() GameConfig {
	return GameConfig{
		Window: WindowConfig{
			Width:    500,
			Height:   800,
			CellSize: 30,
		},
		Timing: TimingConfig{
			FallIntervalMs:  500,
			TickRate:        60,
			MaxFrameDeltaMs: 250,
		},
		Palette: []string{
			"#000000",
			"#ff0000",
			"#00ff00",
			"#0000ff",
			"#ffff00",
			"#ffa500",
			"#800080",
			"#00ffff",
		},
		Outline: "#323232",
	}
}
