package components

import (
	"snake/internal/domain"
	"snake/internal/render"
	"snake/internal/ui/types"
)

// Button is a labelled box. A selected button is filled with the highlight
// color; the others are outlined.
type Button struct {
	Rect     domain.Rect
	Text     string
	Font     render.FontSize
	Selected bool
}

func NewButton(rect domain.Rect, buttonText string) *Button {
	return &Button{
		Rect: rect,
		Text: buttonText,
		Font: render.FontNormal,
	}
}

func (b *Button) Draw(f *render.Frame) {
	textColor := types.ColorText
	if b.Selected {
		f.FillRect(b.Rect, types.ColorHighlight)
		textColor = types.ColorBackground
	} else {
		f.StrokeRect(b.Rect, 2, types.ColorOutline)
	}

	cx, cy := b.Rect.Center()
	f.Text(b.Text, cx, cy, b.Font, render.AlignCenter, textColor)
}
