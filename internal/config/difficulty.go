package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only choose the constant fall interval; speed never changes
// during a game.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// FallIntervalForPreset returns the gravity period in milliseconds for a
// preset, and false for presets that keep the configured value.
func FallIntervalForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 800, true
	case DifficultyNormal:
		return 500, true
	case DifficultyHard:
		return 250, true
	default:
		return 0, false
	}
}

// ParsePreset validates a preset name. An empty name means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if ms, ok := FallIntervalForPreset(preset); ok {
		cfg.Timing.FallIntervalMs = ms
	}
}
