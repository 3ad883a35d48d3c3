package menu

// Action is what a menu asks the game loop to do after handling input.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionOptions
	ActionExit
	ActionBack
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionOptions:
		return "Options"
	case ActionExit:
		return "Exit"
	case ActionBack:
		return "Back"
	}
	return "None"
}
