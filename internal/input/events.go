// Package input defines the discrete events the game loop consumes.
// Raw device state is translated into these by a Source.
package input

type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
	EventMouseDown
)

type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPauseToggle
	KeyConfirm
	KeyMenuUp
	KeyMenuDown
	KeyExit
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPauseToggle:
		return "PauseToggle"
	case KeyConfirm:
		return "Confirm"
	case KeyMenuUp:
		return "MenuUp"
	case KeyMenuDown:
		return "MenuDown"
	case KeyExit:
		return "Exit"
	}
	return "None"
}

type Event struct {
	Type EventType
	Key  Key
	X, Y int
}

func Quit() Event {
	return Event{Type: EventQuit}
}

func KeyPress(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

func Click(x, y int) Event {
	return Event{Type: EventMouseDown, X: x, Y: y}
}

// Source yields the events that arrived since the previous call.
type Source interface {
	Poll() []Event
}
