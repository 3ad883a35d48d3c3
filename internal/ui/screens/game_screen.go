package screens

import (
	"snake/internal/domain"
	"snake/internal/render"
	"snake/internal/ui/components"
	"snake/internal/ui/types"
)

type GameScreen struct {
	ctx types.ScreenContext
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{ctx: ctx}
}

func (s *GameScreen) Draw(f *render.Frame) {
	f.Clear(types.ColorBackground)

	session := s.ctx.Session()
	if session == nil {
		return
	}
	settings := s.ctx.Settings()
	w, h := s.ctx.Size()

	field := components.NewFieldRenderer(session.Grid)
	field.DrawApple(f, session.Food, settings.AppleColor.Color)
	field.DrawSnake(f, session.Snake.Body(), settings.SnakeColor.Color)

	components.NewScoreboard(w/10, 15).Draw(f, session.Score)

	if session.Paused {
		f.FillRect(domain.Rect{X: 0, Y: 0, Width: w, Height: h}, types.ColorOverlay)
		f.Text("Paused", w/2, h/2, render.FontTitle, render.AlignCenter, types.ColorText)
		f.Text("Press P to resume", w/2, h/2+50, render.FontSmall, render.AlignCenter, types.ColorText)
	}
}
