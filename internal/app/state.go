package app

type State int

const (
	StateMainMenu State = iota
	StateOptions
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateOptions:
		return "Options"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}
