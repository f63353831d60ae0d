package ebiten

import (
	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/vlist"
)

// keyMap maps ebiten keys to the list keys the widget reacts to.
var keyMap = map[eb.Key]vlist.Key{
	eb.KeyArrowUp:   vlist.KeyUp,
	eb.KeyArrowDown: vlist.KeyDown,
	eb.KeyPageUp:    vlist.KeyPageUp,
	eb.KeyPageDown:  vlist.KeyPageDown,
	eb.KeyHome:      vlist.KeyHome,
	eb.KeyEnd:       vlist.KeyEnd,
	eb.KeySpace:     vlist.KeySpace,
	eb.KeyEnter:     vlist.KeyEnter,
	eb.KeyEscape:    vlist.KeyEscape,
}

// InputBridge polls ebiten input state into a vlist.InputState.
type InputBridge struct {
	input *vlist.InputState
}

// NewInputBridge creates an input bridge.
func NewInputBridge() *InputBridge {
	return &InputBridge{input: vlist.NewInputState()}
}

// Update polls the current ebiten input state. Call once per Update tick and
// pass the result to UI.Begin.
func (b *InputBridge) Update() *vlist.InputState {
	b.input.Reset()

	x, y := eb.CursorPosition()
	b.input.SetMousePos(float32(x), float32(y))

	b.input.SetMouseButton(vlist.MouseButtonLeft, eb.IsMouseButtonPressed(eb.MouseButtonLeft))
	b.input.SetMouseButton(vlist.MouseButtonRight, eb.IsMouseButtonPressed(eb.MouseButtonRight))
	b.input.SetMouseButton(vlist.MouseButtonMiddle, eb.IsMouseButtonPressed(eb.MouseButtonMiddle))

	wx, wy := eb.Wheel()
	b.input.SetMouseWheel(float32(wx), float32(wy))

	for ek, lk := range keyMap {
		b.input.SetKey(lk, eb.IsKeyPressed(ek))
	}

	return b.input
}

// Input returns the current input state.
func (b *InputBridge) Input() *vlist.InputState {
	return b.input
}
