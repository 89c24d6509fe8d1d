package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockfall/internal/core"
)

// keyActions maps keyboard keys to game actions. Mirrors the terminal bindings.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyH:          core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyL:          core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyJ:          core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowUp:    core.ActionRotate,
	ebiten.KeyK:          core.ActionRotate,
	ebiten.KeyW:          core.ActionRotate,
	ebiten.KeyX:          core.ActionRotate,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyQ:          core.ActionQuit,
	ebiten.KeyEscape:     core.ActionQuit,
}

// MapKey translates a key to a game action, ActionNone if unbound.
func MapKey(k ebiten.Key) core.Action {
	return keyActions[k]
}
