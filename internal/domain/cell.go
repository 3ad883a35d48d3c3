package domain

// Cell is a grid position: X is the column, Y is the row.
type Cell struct {
	X int
	Y int
}

func (c Cell) Add(other Cell) Cell {
	return Cell{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

func (c Cell) Equals(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Inflate grows the rectangle by dx horizontally and dy vertically,
// keeping its center in place.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{
		X:      r.X - dx/2,
		Y:      r.Y - dy/2,
		Width:  r.Width + dx,
		Height: r.Height + dy,
	}
}
