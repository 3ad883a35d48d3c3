package domain

// Grid maps the pixel window onto a board of square cells.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid derives the board size in cells from a pixel area.
// Partial cells at the right and bottom edges are dropped.
func NewGrid(pixelWidth, pixelHeight, cellSize int) Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Grid{
		Width:    pixelWidth / cellSize,
		Height:   pixelHeight / cellSize,
		CellSize: cellSize,
	}
}

// ToCell returns the cell containing the pixel. Pixels left of or above the
// board map to negative cells, floor-divided.
func (g Grid) ToCell(px, py int) Cell {
	return Cell{X: floorDiv(px, g.CellSize), Y: floorDiv(py, g.CellSize)}
}

func (g Grid) ToPixel(c Cell) Rect {
	return Rect{
		X:      c.X * g.CellSize,
		Y:      c.Y * g.CellSize,
		Width:  g.CellSize,
		Height: g.CellSize,
	}
}

func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

func (g Grid) Size() int {
	return g.Width * g.Height
}

// Index is the row-major index of an on-board cell.
func (g Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

func (g Grid) CellAt(index int) Cell {
	return Cell{X: index % g.Width, Y: index / g.Width}
}

func (g Grid) PixelSize() (int, int) {
	return g.Width * g.CellSize, g.Height * g.CellSize
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
