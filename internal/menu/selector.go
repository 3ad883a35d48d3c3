package menu

// Selector is an ordered list of options with a current index that wraps
// around at both ends.
type Selector[T any] struct {
	items []T
	index int
}

func NewSelector[T any](items []T) *Selector[T] {
	return &Selector[T]{items: items}
}

func (s *Selector[T]) Next() {
	if len(s.items) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.items)
}

func (s *Selector[T]) Prev() {
	if len(s.items) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.items)) % len(s.items)
}

// Current returns the selected item, or the zero value when empty.
func (s *Selector[T]) Current() T {
	var zero T
	if len(s.items) == 0 {
		return zero
	}
	return s.items[s.index]
}

func (s *Selector[T]) Index() int {
	return s.index
}

func (s *Selector[T]) Len() int {
	return len(s.items)
}

func (s *Selector[T]) Items() []T {
	return s.items
}

func (s *Selector[T]) Select(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.index = i
	return true
}

// SelectFunc selects the first item matching match.
func (s *Selector[T]) SelectFunc(match func(T) bool) bool {
	for i, item := range s.items {
		if match(item) {
			s.index = i
			return true
		}
	}
	return false
}
