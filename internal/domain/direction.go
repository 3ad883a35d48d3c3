package domain

type Direction int

const (
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

// Opposite returns the reverse heading, or 0 for an invalid direction. 0 is
// never Valid, so an invalid heading has no opposite to reject against.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return 0
}

func (d Direction) Delta() Cell {
	switch d {
	case DirectionUp:
		return Cell{0, -1}
	case DirectionDown:
		return Cell{0, 1}
	case DirectionLeft:
		return Cell{-1, 0}
	case DirectionRight:
		return Cell{1, 0}
	}
	return Cell{}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	}
	return "None"
}
