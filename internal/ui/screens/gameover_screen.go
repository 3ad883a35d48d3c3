package screens

import (
	"fmt"

	"snake/internal/render"
	"snake/internal/ui/types"
)

type GameOverScreen struct {
	ctx types.ScreenContext
}

func NewGameOverScreen(ctx types.ScreenContext) *GameOverScreen {
	return &GameOverScreen{ctx: ctx}
}

func (s *GameOverScreen) Draw(f *render.Frame) {
	f.Clear(types.ColorBackground)

	w, h := s.ctx.Size()
	f.Text("Game Over", w/2, h/4, render.FontTitle, render.AlignCenter, types.ColorError)
	f.Text(fmt.Sprintf("Score: %d", s.ctx.LastScore()), w/2, h/2, render.FontNormal, render.AlignCenter, types.ColorText)
}
