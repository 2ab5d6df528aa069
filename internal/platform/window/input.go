package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// bindings maps each action to the keys that hold it.
var bindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// pollInput fills f with the keys and pointer state held right now.
// Rising edges are left to the caller's EdgeDetector.
func pollInput(f *core.InputFrame, lastX, lastY int) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				f.Set(b.action)
				break
			}
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		f.Set(core.ActionClick)
	}

	x, y := ebiten.CursorPosition()
	f.Pointer = core.Pointer{X: x, Y: y, Moved: x != lastX || y != lastY}
}
