package domain

import (
	"fmt"
	"time"
)

// The menus are laid out in fixed pixels; smaller windows clip the options
// rows and the Back button.
const (
	MinWindowWidth  = 520
	MinWindowHeight = 480
	MaxWindowSize   = 4096
)

// GameConfig is the launch configuration. It is fixed for the lifetime of
// the process; player choices live in Settings.
type GameConfig struct {
	Width         int
	Height        int
	CellSize      int
	GameOverDelay time.Duration
	Seed          uint64
	FrameRate     int
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:         640,
		Height:        480,
		CellSize:      20,
		GameOverDelay: 750 * time.Millisecond,
		Seed:          0,
		FrameRate:     60,
	}
}

func (c *GameConfig) Validate() error {
	if c.CellSize < 4 || c.CellSize > 100 {
		return fmt.Errorf("cell size %d not in 4-100: %w", c.CellSize, ErrInvalidConfig)
	}
	if c.Width < MinWindowWidth || c.Width > MaxWindowSize {
		return fmt.Errorf("width %d not in %d-%d: %w", c.Width, MinWindowWidth, MaxWindowSize, ErrInvalidConfig)
	}
	if c.Height < MinWindowHeight || c.Height > MaxWindowSize {
		return fmt.Errorf("height %d not in %d-%d: %w", c.Height, MinWindowHeight, MaxWindowSize, ErrInvalidConfig)
	}
	if grid := c.Grid(); grid.Width < 8 || grid.Height < 8 {
		return fmt.Errorf("board %dx%d smaller than 8x8: %w", grid.Width, grid.Height, ErrInvalidConfig)
	}
	if c.GameOverDelay < 0 || c.GameOverDelay > 10*time.Second {
		return fmt.Errorf("game over delay %s not in 0-10s: %w", c.GameOverDelay, ErrInvalidConfig)
	}
	if c.FrameRate < 10 || c.FrameRate > 240 {
		return fmt.Errorf("frame rate %d not in 10-240: %w", c.FrameRate, ErrInvalidConfig)
	}
	return nil
}

func (c *GameConfig) Grid() Grid {
	return NewGrid(c.Width, c.Height, c.CellSize)
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		Width:         c.Width,
		Height:        c.Height,
		CellSize:      c.CellSize,
		GameOverDelay: c.GameOverDelay,
		Seed:          c.Seed,
		FrameRate:     c.FrameRate,
	}
}
