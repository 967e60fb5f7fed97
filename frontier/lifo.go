package frontier

// LIFO is a stack: the most recently inserted item leaves first.
type LIFO[T any] struct {
	items []T
}

// NewLIFO returns an empty stack.
func NewLIFO[T any]() *LIFO[T] {
	return &LIFO[T]{}
}

// Insert pushes item on top.
func (s *LIFO[T]) Insert(item T) {
	s.items = append(s.items, item)
}

// InsertAll pushes items in reverse slice order, leaving items[0] on top.
func (s *LIFO[T]) InsertAll(items []T) {
	for i := len(items) - 1; i >= 0; i-- {
		s.items = append(s.items, items[i])
	}
}

// Remove pops the top of the stack.
func (s *LIFO[T]) Remove() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmpty
	}
	item := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return item, nil
}

// IsEmpty reports whether the stack has no pending items.
func (s *LIFO[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of pending items.
func (s *LIFO[T]) Len() int { return len(s.items) }
