package domain_test

import (
	"testing"
	"time"

	"snake/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *domain.Session {
	t.Helper()
	s, err := domain.NewSession(domain.NewGrid(640, 480, 20), domain.NewFoodSpawner(5), time.Unix(0, 0))
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	s := newSession(t)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 0, s.Score)
	assert.False(t, s.Paused)
	assert.Equal(t, []domain.Cell{{5, 5}, {4, 5}, {3, 5}}, s.Snake.Body())
	assert.Equal(t, domain.DirectionRight, s.Snake.Heading())
	assert.False(t, s.Snake.Occupies(s.Food))
	assert.True(t, s.Grid.Contains(s.Food))
}

func TestSessionTickEatsFood(t *testing.T) {
	s := newSession(t)
	s.Food = domain.Cell{X: 6, Y: 5}

	res := s.Tick()

	assert.True(t, res.Advanced)
	assert.True(t, res.Advance.Consumed)
	assert.Equal(t, domain.OutcomeNone, res.Outcome)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 4, s.Snake.Len())
	assert.NotEqual(t, domain.Cell{X: 6, Y: 5}, s.Food)
	assert.False(t, s.Snake.Occupies(s.Food))
}

func TestSessionTickWithoutFood(t *testing.T) {
	s := newSession(t)
	s.Food = domain.Cell{X: 20, Y: 20}

	res := s.Tick()

	assert.False(t, res.Advance.Consumed)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, domain.Cell{X: 20, Y: 20}, s.Food)
	assert.Equal(t, 3, s.Snake.Len())
}

func TestSessionTickHitsWall(t *testing.T) {
	s := newSession(t)
	s.Snake = domain.NewSnake([]domain.Cell{{31, 5}, {30, 5}, {29, 5}}, domain.DirectionRight)
	s.Food = domain.Cell{X: 0, Y: 0}

	res := s.Tick()

	assert.Equal(t, domain.OutcomeWall, res.Outcome)
	assert.True(t, res.Outcome.Terminal())
	assert.Equal(t, domain.Cell{X: 32, Y: 5}, res.Advance.NewHead)
}

func TestSessionTickHitsSelf(t *testing.T) {
	s := newSession(t)
	s.Snake = domain.NewSnake([]domain.Cell{{5, 5}, {5, 6}, {4, 6}, {4, 5}, {4, 4}}, domain.DirectionUp)
	s.Food = domain.Cell{X: 20, Y: 20}
	require.True(t, s.Steer(domain.DirectionLeft))

	res := s.Tick()

	assert.Equal(t, domain.OutcomeSelf, res.Outcome)
	assert.Equal(t, 0, s.Score)
}

func TestSessionPauseSkipsTick(t *testing.T) {
	s := newSession(t)
	s.Food = domain.Cell{X: 6, Y: 5}

	assert.True(t, s.TogglePause())
	res := s.Tick()

	assert.False(t, res.Advanced)
	assert.Equal(t, domain.Cell{X: 5, Y: 5}, s.Snake.Head())
	assert.Equal(t, 0, s.Score)

	assert.False(t, s.TogglePause())
	res = s.Tick()
	assert.True(t, res.Advance.Consumed)
	assert.Equal(t, 1, s.Score)
}

func TestSessionBoardFull(t *testing.T) {
	grid := domain.NewGrid(8, 8, 1)
	s, err := domain.NewSession(grid, domain.NewFoodSpawner(1), time.Unix(0, 0))
	require.NoError(t, err)

	// Serpentine path over the whole board; the snake covers all of it but
	// (0,0) and is about to eat there.
	path := make([]domain.Cell, 0, 64)
	for y := 0; y < 8; y++ {
		for i := 0; i < 8; i++ {
			x := i
			if y%2 == 1 {
				x = 7 - i
			}
			path = append(path, domain.Cell{X: x, Y: y})
		}
	}
	s.Snake = domain.NewSnake(path[1:], domain.DirectionLeft)
	s.Food = domain.Cell{X: 0, Y: 0}

	res := s.Tick()

	assert.True(t, res.Advance.Consumed)
	assert.Equal(t, domain.OutcomeBoardFull, res.Outcome)
	assert.Equal(t, 1, s.Score)
	assert.Equal(t, 64, s.Snake.Len())
}
