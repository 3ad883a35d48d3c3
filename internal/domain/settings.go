package domain

import (
	"fmt"
	"image/color"
	"time"
)

type NamedColor struct {
	Name  string
	Color color.RGBA
}

type Speed struct {
	Name           string
	TicksPerSecond int
}

var ColorOptions = []NamedColor{
	{"Green", color.RGBA{0, 255, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Orange", color.RGBA{255, 165, 0, 255}},
	{"Purple", color.RGBA{128, 0, 128, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
}

var SpeedOptions = []Speed{
	{"Slow", 10},
	{"Normal", 15},
	{"Fast", 20},
}

// Settings holds the player's choices from the options screen.
type Settings struct {
	SnakeColor NamedColor
	AppleColor NamedColor
	Speed      Speed
}

func DefaultSettings() *Settings {
	return &Settings{
		SnakeColor: ColorOptions[0],
		AppleColor: ColorOptions[4],
		Speed:      SpeedOptions[1],
	}
}

func (s *Settings) Validate() error {
	if s.SnakeColor.Color == s.AppleColor.Color {
		return fmt.Errorf("snake %s, apple %s: %w", s.SnakeColor.Name, s.AppleColor.Name, ErrSameColors)
	}
	if s.Speed.TicksPerSecond <= 0 {
		return fmt.Errorf("speed %q has %d ticks per second", s.Speed.Name, s.Speed.TicksPerSecond)
	}
	return nil
}

// TickInterval is the time between two snake moves.
func (s *Settings) TickInterval() time.Duration {
	if s.Speed.TicksPerSecond <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(s.Speed.TicksPerSecond)
}

func (s *Settings) Copy() *Settings {
	c := *s
	return &c
}
