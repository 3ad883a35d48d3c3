package types

import (
	"snake/internal/domain"
	"snake/internal/render"
)

type Screen interface {
	Draw(f *render.Frame)
}

// ScreenContext is the read-only view of the game a screen draws from.
type ScreenContext interface {
	Size() (int, int)
	Settings() *domain.Settings
	Session() *domain.Session
	LastScore() int
}
