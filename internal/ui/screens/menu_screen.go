package screens

import (
	"snake/internal/menu"
	"snake/internal/render"
	"snake/internal/ui/components"
	"snake/internal/ui/types"
)

const gameTitle = "Snake Game"

type MenuScreen struct {
	ctx  types.ScreenContext
	menu *menu.MainMenu
}

func NewMenuScreen(ctx types.ScreenContext, m *menu.MainMenu) *MenuScreen {
	return &MenuScreen{ctx: ctx, menu: m}
}

func (s *MenuScreen) Draw(f *render.Frame) {
	f.Clear(types.ColorBackground)

	w, h := s.ctx.Size()
	layout := s.menu.Layout()
	f.Text(gameTitle, w/2, layout.TitleY(), render.FontTitle, render.AlignCenter, types.ColorText)

	for i, item := range s.menu.Items() {
		btn := components.NewButton(layout.MenuItemRect(i), item.String())
		btn.Selected = i == s.menu.Selected()
		btn.Draw(f)
	}

	f.Text("Arrows to move, Enter to select", w/2, h-30, render.FontSmall, render.AlignCenter,
		types.Darken(types.ColorText, 0.65))
}
