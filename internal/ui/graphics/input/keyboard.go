package input

import (
	"snake/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	keys []ebiten.Key
	key  input.Key
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}, key: input.KeyUp},
	{keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}, key: input.KeyDown},
	{keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}, key: input.KeyLeft},
	{keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}, key: input.KeyRight},
	{keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace}, key: input.KeyConfirm},
	{keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}, key: input.KeyPauseToggle},
	{keys: []ebiten.Key{ebiten.KeyQ}, key: input.KeyExit},
}

// KeyboardHandler turns ebiten keyboard, mouse and window state into input
// events. It must be polled from the ebiten Update goroutine.
type KeyboardHandler struct {
	events []input.Event
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Poll returns the events that happened since the previous frame. The slice
// is reused by the next call.
func (kh *KeyboardHandler) Poll() []input.Event {
	kh.events = kh.events[:0]

	if ebiten.IsWindowBeingClosed() {
		kh.events = append(kh.events, input.Quit())
	}

	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				kh.events = append(kh.events, input.KeyPress(b.key))
				break
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			kh.events = append(kh.events, input.KeyPress(input.KeyMenuUp))
		} else {
			kh.events = append(kh.events, input.KeyPress(input.KeyMenuDown))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		kh.events = append(kh.events, input.Click(x, y))
	}

	return kh.events
}
