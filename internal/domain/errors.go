package domain

import "errors"

var (
	// ErrNoSpace is returned by the food spawner when every cell is taken.
	ErrNoSpace = errors.New("no free cell on board")

	// ErrSameColors rejects settings where the snake and apple share a color.
	ErrSameColors = errors.New("snake and apple colors must be different")

	ErrInvalidConfig = errors.New("invalid game config")
)
