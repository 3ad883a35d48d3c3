package graphics

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snake/internal/render"
)

// Renderer replays a render.Frame onto an ebiten image.
type Renderer struct {
	fonts *Fonts
}

func NewRenderer(fonts *Fonts) *Renderer {
	return &Renderer{fonts: fonts}
}

func (r *Renderer) Render(dst *ebiten.Image, f *render.Frame) {
	for i := range f.Commands {
		cmd := &f.Commands[i]
		switch cmd.Type {
		case render.CommandClear:
			dst.Fill(cmd.Color)
		case render.CommandFillCircle:
			vector.DrawFilledCircle(dst, cmd.X, cmd.Y, cmd.Radius, cmd.Color, true)
		case render.CommandFillRect:
			vector.DrawFilledRect(dst,
				float32(cmd.Rect.X), float32(cmd.Rect.Y),
				float32(cmd.Rect.Width), float32(cmd.Rect.Height),
				cmd.Color, false)
		case render.CommandStrokeRect:
			vector.StrokeRect(dst,
				float32(cmd.Rect.X), float32(cmd.Rect.Y),
				float32(cmd.Rect.Width), float32(cmd.Rect.Height),
				cmd.Stroke, cmd.Color, false)
		case render.CommandText:
			r.drawText(dst, cmd)
		}
	}
}

func (r *Renderer) drawText(dst *ebiten.Image, cmd *render.Command) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cmd.X), float64(cmd.Y))
	op.ColorScale.ScaleWithColor(cmd.Color)
	if cmd.Align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(dst, cmd.Text, r.fonts.Face(cmd.Font), op)
}
