package screens

import (
	"snake/internal/menu"
	"snake/internal/render"
	"snake/internal/ui/components"
	"snake/internal/ui/types"
)

const sameColorsMessage = "Snake and apple colors must be different!"

type OptionsScreen struct {
	ctx     types.ScreenContext
	options *menu.Options
}

func NewOptionsScreen(ctx types.ScreenContext, o *menu.Options) *OptionsScreen {
	return &OptionsScreen{ctx: ctx, options: o}
}

func (s *OptionsScreen) Draw(f *render.Frame) {
	f.Clear(types.ColorBackground)

	w, _ := s.ctx.Size()
	layout := s.options.Layout()
	f.Text("Options", w/2, layout.OptionsTitleY(), render.FontNormal, render.AlignCenter, types.ColorText)

	snakeColors := s.options.SnakeColors()
	names := make([]string, 0, snakeColors.Len())
	for _, c := range snakeColors.Items() {
		names = append(names, c.Name)
	}
	s.drawRow(f, menu.SectionSnakeColor, names, snakeColors.Index())

	appleColors := s.options.AppleColors()
	names = names[:0]
	for _, c := range appleColors.Items() {
		names = append(names, c.Name)
	}
	s.drawRow(f, menu.SectionAppleColor, names, appleColors.Index())

	speeds := s.options.Speeds()
	names = names[:0]
	for _, sp := range speeds.Items() {
		names = append(names, sp.Name)
	}
	s.drawRow(f, menu.SectionSpeed, names, speeds.Index())

	back := components.NewButton(layout.BackRect(), menu.SectionBack.Caption())
	back.Selected = s.options.Focus() == menu.SectionBack
	back.Draw(f)

	if s.options.Clash() {
		f.Text(sameColorsMessage, w/2, layout.ErrorY(), render.FontSmall, render.AlignCenter, types.ColorError)
	}
}

// drawRow draws a caption and one button per choice. The chosen button is
// filled and, in the focused row, ringed; other captions are dimmed.
func (s *OptionsScreen) drawRow(f *render.Frame, section menu.Section, names []string, selected int) {
	w, _ := s.ctx.Size()
	layout := s.options.Layout()

	focused := s.options.Focus() == section
	captionColor := types.Darken(types.ColorText, 0.65)
	if focused {
		captionColor = types.ColorText
	}
	f.Text(section.Caption(), w/2, layout.SectionCaptionY(section), render.FontSmall, render.AlignCenter, captionColor)

	for i, name := range names {
		btn := components.NewButton(layout.OptionButtonRect(section, i, len(names)), name)
		btn.Font = render.FontSmall
		btn.Selected = i == selected
		btn.Draw(f)
		if focused && btn.Selected {
			f.StrokeRect(btn.Rect.Inflate(6, 6), 1, types.ColorOutline)
		}
	}
}
