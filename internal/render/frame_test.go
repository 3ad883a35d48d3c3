package render_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake/internal/domain"
	"snake/internal/render"
)

func TestFrameKeepsDrawOrder(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	f := render.NewFrame()

	f.Clear(red)
	f.FillRect(domain.Rect{X: 1, Y: 2, Width: 3, Height: 4}, red)
	f.FillCircle(10, 20, 5, red)
	f.StrokeRect(domain.Rect{Width: 8, Height: 8}, 2, red)
	f.Text("hello", 30, 40, render.FontTitle, render.AlignLeft, red)

	require.Len(t, f.Commands, 5)
	types := make([]render.CommandType, 0, len(f.Commands))
	for _, c := range f.Commands {
		types = append(types, c.Type)
	}
	assert.Equal(t, []render.CommandType{
		render.CommandClear,
		render.CommandFillRect,
		render.CommandFillCircle,
		render.CommandStrokeRect,
		render.CommandText,
	}, types)

	circle := f.Commands[2]
	assert.Equal(t, float32(10), circle.X)
	assert.Equal(t, float32(5), circle.Radius)

	txt := f.Commands[4]
	assert.Equal(t, "hello", txt.Text)
	assert.Equal(t, render.FontTitle, txt.Font)
	assert.Equal(t, render.AlignLeft, txt.Align)
}

func TestFrameCountAndTexts(t *testing.T) {
	f := render.NewFrame()
	f.Text("a", 0, 0, render.FontSmall, render.AlignCenter, color.RGBA{})
	f.FillCircle(0, 0, 1, color.RGBA{})
	f.Text("b", 0, 0, render.FontSmall, render.AlignCenter, color.RGBA{})

	assert.Equal(t, 2, f.Count(render.CommandText))
	assert.Equal(t, 1, f.Count(render.CommandFillCircle))
	assert.Zero(t, f.Count(render.CommandClear))
	assert.Equal(t, []string{"a", "b"}, f.Texts())
	assert.Nil(t, render.NewFrame().Texts())
}
