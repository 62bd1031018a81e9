//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

var hostKeymap = [...]struct {
	keys []ebiten.Key
	b    ButtonState
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, ButtonUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, ButtonDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, ButtonLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, ButtonRight},
}

// poll latches the level of the mapped keys; the firmware reads levels, not edges.
func (k *hostKeyboard) poll() {
	var s ButtonState
	for _, m := range hostKeymap {
		for _, key := range m.keys {
			if ebiten.IsKeyPressed(key) {
				s |= m.b
				break
			}
		}
	}
	k.set(s)
}
