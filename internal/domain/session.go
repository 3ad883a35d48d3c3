package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome tells whether a tick ended the session and why.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeBoardFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeBoardFull:
		return "board full"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) Terminal() bool {
	return o != OutcomeNone
}

type TickResult struct {
	Advanced bool
	Advance  AdvanceResult
	Outcome  Outcome
}

// StartBody is the snake every session begins with, head first.
var StartBody = []Cell{{5, 5}, {4, 5}, {3, 5}}

const StartHeading = DirectionRight

// Session is one round of play, from Start to Game Over.
type Session struct {
	ID        string
	Grid      Grid
	Snake     *Snake
	Food      Cell
	Score     int
	Paused    bool
	StartedAt time.Time

	spawner *FoodSpawner
}

func NewSession(grid Grid, spawner *FoodSpawner, now time.Time) (*Session, error) {
	snake := NewSnake(StartBody, StartHeading)

	food, err := spawner.Spawn(grid.Width, grid.Height, snake.Body())
	if err != nil {
		return nil, fmt.Errorf("place first food: %w", err)
	}

	return &Session{
		ID:        uuid.NewString(),
		Grid:      grid,
		Snake:     snake,
		Food:      food,
		StartedAt: now,
		spawner:   spawner,
	}, nil
}

func (s *Session) Steer(d Direction) bool {
	return s.Snake.SetPendingDirection(d)
}

func (s *Session) TogglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}

// Tick moves the snake one cell unless paused. Food eaten on this tick is
// scored and replaced before Tick returns.
func (s *Session) Tick() TickResult {
	if s.Paused {
		return TickResult{}
	}

	adv := s.Snake.Advance(s.Food)
	result := TickResult{Advanced: true, Advance: adv}

	if s.Snake.CollidesWithWalls(s.Grid.Width, s.Grid.Height) {
		result.Outcome = OutcomeWall
		return result
	}
	if s.Snake.CollidesWithSelf() {
		result.Outcome = OutcomeSelf
		return result
	}

	if adv.Consumed {
		s.Score++

		food, err := s.spawner.Spawn(s.Grid.Width, s.Grid.Height, s.Snake.Body())
		if err != nil {
			result.Outcome = OutcomeBoardFull
			return result
		}
		s.Food = food
	}

	return result
}
