package components

import (
	"fmt"

	"snake/internal/render"
	"snake/internal/ui/types"
)

type Scoreboard struct {
	X, Y int
}

func NewScoreboard(x, y int) *Scoreboard {
	return &Scoreboard{X: x, Y: y}
}

func (sb *Scoreboard) Draw(f *render.Frame, score int) {
	f.Text(fmt.Sprintf("Score: %d", score), sb.X, sb.Y, render.FontSmall, render.AlignLeft, types.ColorText)
}
