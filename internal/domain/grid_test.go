package domain_test

import (
	"testing"

	"snake/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	grid := domain.NewGrid(640, 480, 20)

	assert.Equal(t, 32, grid.Width)
	assert.Equal(t, 24, grid.Height)
	assert.Equal(t, 768, grid.Size())

	w, h := grid.PixelSize()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestGridConversions(t *testing.T) {
	grid := domain.NewGrid(640, 480, 20)

	tests := []struct {
		px, py int
		want   domain.Cell
	}{
		{0, 0, domain.Cell{X: 0, Y: 0}},
		{19, 19, domain.Cell{X: 0, Y: 0}},
		{20, 39, domain.Cell{X: 1, Y: 1}},
		{100, 100, domain.Cell{X: 5, Y: 5}},
		{639, 479, domain.Cell{X: 31, Y: 23}},
		{-1, -20, domain.Cell{X: -1, Y: -1}},
		{-21, 0, domain.Cell{X: -2, Y: 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, grid.ToCell(tt.px, tt.py), "pixel (%d,%d)", tt.px, tt.py)
	}

	assert.Equal(t, domain.Rect{X: 100, Y: 60, Width: 20, Height: 20}, grid.ToPixel(domain.Cell{X: 5, Y: 3}))

	for _, c := range []domain.Cell{{0, 0}, {5, 3}, {31, 23}} {
		r := grid.ToPixel(c)
		assert.Equal(t, c, grid.ToCell(r.X, r.Y))
		assert.Equal(t, c, grid.CellAt(grid.Index(c)))
	}
}

func TestGridContains(t *testing.T) {
	grid := domain.NewGrid(640, 480, 20)

	assert.True(t, grid.Contains(domain.Cell{X: 31, Y: 23}))
	assert.False(t, grid.Contains(domain.Cell{X: 32, Y: 5}))
	assert.False(t, grid.Contains(domain.Cell{X: 0, Y: -1}))
}

func TestRect(t *testing.T) {
	r := domain.Rect{X: 10, Y: 10, Width: 80, Height: 40}

	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(89, 49))
	assert.False(t, r.Contains(90, 10))

	cx, cy := r.Center()
	assert.Equal(t, 50, cx)
	assert.Equal(t, 30, cy)

	assert.Equal(t, domain.Rect{X: 0, Y: 5, Width: 100, Height: 50}, r.Inflate(20, 10))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, domain.DirectionDown, domain.DirectionUp.Opposite())
	assert.Equal(t, domain.DirectionRight, domain.DirectionLeft.Opposite())
	assert.True(t, domain.DirectionUp.IsOpposite(domain.DirectionDown))
	assert.False(t, domain.DirectionUp.IsOpposite(domain.DirectionLeft))
	assert.Equal(t, domain.Direction(0), domain.Direction(9).Opposite())
	assert.False(t, domain.Direction(9).Valid())
	assert.Equal(t, domain.Cell{X: 0, Y: -1}, domain.DirectionUp.Delta())
	assert.Equal(t, domain.Cell{X: 1, Y: 0}, domain.DirectionRight.Delta())
	assert.False(t, domain.Direction(0).Valid())
	assert.Equal(t, "Left", domain.DirectionLeft.String())
}
