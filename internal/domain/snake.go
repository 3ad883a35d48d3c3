package domain

import "github.com/gammazero/deque"

// AdvanceResult reports what a single Advance did.
type AdvanceResult struct {
	Consumed bool
	NewHead  Cell
}

// Snake is the player's body, head first, plus its heading. The body is a
// deque so each tick costs one push at the front and at most one pop at the back.
type Snake struct {
	body    deque.Deque[Cell]
	heading Direction
	pending Direction
}

// NewSnake builds a snake from cells ordered head first.
func NewSnake(cells []Cell, heading Direction) *Snake {
	s := &Snake{
		heading: heading,
		pending: heading,
	}
	for _, c := range cells {
		s.body.PushBack(c)
	}
	return s
}

func (s *Snake) Head() Cell {
	if s.body.Len() == 0 {
		return Cell{}
	}
	return s.body.Front()
}

func (s *Snake) Tail() Cell {
	if s.body.Len() == 0 {
		return Cell{}
	}
	return s.body.Back()
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a copy of the cells, head first.
func (s *Snake) Body() []Cell {
	result := make([]Cell, 0, s.body.Len())
	for i := 0; i < s.body.Len(); i++ {
		result = append(result, s.body.At(i))
	}
	return result
}

func (s *Snake) Heading() Direction {
	return s.heading
}

func (s *Snake) Pending() Direction {
	return s.pending
}

// SetPendingDirection buffers d for the next Advance. A direction opposite to
// the applied heading is ignored and false is returned.
func (s *Snake) SetPendingDirection(d Direction) bool {
	if !d.Valid() || d.IsOpposite(s.heading) {
		return false
	}
	s.pending = d
	return true
}

// Advance applies the pending direction and moves one cell. The tail is kept
// when the new head lands on food.
func (s *Snake) Advance(food Cell) AdvanceResult {
	s.heading = s.pending

	newHead := s.Head().Add(s.heading.Delta())
	s.body.PushFront(newHead)

	consumed := newHead.Equals(food)
	if !consumed {
		s.body.PopBack()
	}

	return AdvanceResult{Consumed: consumed, NewHead: newHead}
}

func (s *Snake) CollidesWithWalls(boardWidth, boardHeight int) bool {
	head := s.Head()
	return head.X < 0 || head.X >= boardWidth || head.Y < 0 || head.Y >= boardHeight
}

func (s *Snake) CollidesWithSelf() bool {
	head := s.Head()
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i).Equals(head) {
			return true
		}
	}
	return false
}

func (s *Snake) Occupies(c Cell) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i).Equals(c) {
			return true
		}
	}
	return false
}
