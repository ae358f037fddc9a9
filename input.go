package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ProfMYK/game/component"
)

const stickDeadzone = 0.3

// Input holds the per-direction movement state for the current tick.
type Input struct {
	held     [component.DirCount]bool
	released [component.DirCount]bool
}

func NewInput() *Input {
	return &Input{}
}

// keyBindings maps each direction to the keys that drive it.
var keyBindings = map[component.Direction][]ebiten.Key{
	component.DirLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	component.DirRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	component.DirDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	component.DirUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
}

// Update polls the keyboard and gamepad. Release edges are detected against
// the previous tick's state so a gamepad stick snapping back to center
// behaves like a key release.
func (i *Input) Update() {
	var cur [component.DirCount]bool
	for dir, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				cur[dir] = true
				break
			}
		}
	}

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > stickDeadzone {
			if lx < 0 {
				cur[component.DirLeft] = true
			} else {
				cur[component.DirRight] = true
			}
		}
		if math.Abs(ly) > stickDeadzone {
			if ly < 0 {
				cur[component.DirUp] = true
			} else {
				cur[component.DirDown] = true
			}
		}

		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			cur[component.DirLeft] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			cur[component.DirRight] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftBottom) {
			cur[component.DirDown] = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftTop) {
			cur[component.DirUp] = true
		}
	}

	for d := component.Direction(0); d < component.DirCount; d++ {
		i.released[d] = i.held[d] && !cur[d]
	}
	i.held = cur
}

// Held reports whether the key for a direction is currently down.
func (i *Input) Held(d component.Direction) bool { return i.held[d] }

// Released reports whether the key for a direction was let go this tick.
func (i *Input) Released(d component.Direction) bool { return i.released[d] }
