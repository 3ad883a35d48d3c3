package components

import (
	"image/color"

	"snake/internal/domain"
	"snake/internal/render"
	"snake/internal/ui/types"
)

// FieldRenderer draws board contents as circles centered in their cells.
type FieldRenderer struct {
	grid domain.Grid
}

func NewFieldRenderer(grid domain.Grid) *FieldRenderer {
	return &FieldRenderer{grid: grid}
}

func (fr *FieldRenderer) center(c domain.Cell) (float32, float32) {
	r := fr.grid.ToPixel(c)
	return float32(r.X) + float32(r.Width)/2, float32(r.Y) + float32(r.Height)/2
}

// DrawSnake draws body cells tail first so the head ends up on top, then the
// eyes on the head.
func (fr *FieldRenderer) DrawSnake(f *render.Frame, body []domain.Cell, snakeColor color.RGBA) {
	if len(body) == 0 {
		return
	}
	radius := float32(fr.grid.CellSize) / 2

	for i := len(body) - 1; i >= 0; i-- {
		cx, cy := fr.center(body[i])
		f.FillCircle(cx, cy, radius, snakeColor)
	}

	cx, cy := fr.center(body[0])
	offset := float32(fr.grid.CellSize / 5)
	eye := float32(max(2, fr.grid.CellSize/10))
	f.FillCircle(cx-offset, cy-offset, eye, types.ColorText)
	f.FillCircle(cx+offset, cy-offset, eye, types.ColorText)
}

// DrawApple draws the apple with a small leaf on its top edge.
func (fr *FieldRenderer) DrawApple(f *render.Frame, food domain.Cell, appleColor color.RGBA) {
	cx, cy := fr.center(food)
	radius := float32(fr.grid.CellSize) / 2
	f.FillCircle(cx, cy, radius, appleColor)

	leaf := float32(fr.grid.CellSize) / 6
	f.FillCircle(cx, cy-radius, leaf, types.ColorLeaf)
}
