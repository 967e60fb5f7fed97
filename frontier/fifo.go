package frontier

// FIFO is a queue: items leave in the order they arrived.
type FIFO[T any] struct {
	items []T
	head  int
}

// NewFIFO returns an empty queue.
func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{}
}

// Insert appends item to the tail.
func (q *FIFO[T]) Insert(item T) {
	q.items = append(q.items, item)
}

// InsertAll appends items to the tail in slice order.
func (q *FIFO[T]) InsertAll(items []T) {
	q.items = append(q.items, items...)
}

// Remove pops the head of the queue.
func (q *FIFO[T]) Remove() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	item := q.items[q.head]
	q.items[q.head] = zero // release reference
	q.head++

	// compact once the consumed prefix dominates the backing array
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, nil
}

// IsEmpty reports whether the queue has no pending items.
func (q *FIFO[T]) IsEmpty() bool { return q.head >= len(q.items) }

// Len returns the number of pending items.
func (q *FIFO[T]) Len() int { return len(q.items) - q.head }
