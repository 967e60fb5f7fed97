package frontier

import "container/heap"

// Priority is a min-priority queue ordered by a key function.
//
// The key of an item is computed once, when it is inserted. Items with equal
// keys are removed in insertion order.
type Priority[T any] struct {
	key  func(T) float64
	pq   entryPQ[T]
	next uint64 // insertion sequence for tie-breaking
}

// NewPriority returns an empty queue ordered by ascending key(item).
// A nil key orders every item as 0, which degrades to FIFO.
func NewPriority[T any](key func(T) float64) *Priority[T] {
	if key == nil {
		key = func(T) float64 { return 0 }
	}

	return &Priority[T]{key: key}
}

// Insert adds item with priority key(item).
func (p *Priority[T]) Insert(item T) {
	heap.Push(&p.pq, entry[T]{item: item, key: p.key(item), seq: p.next})
	p.next++
}

// InsertAll inserts items one by one in slice order.
func (p *Priority[T]) InsertAll(items []T) {
	for _, item := range items {
		p.Insert(item)
	}
}

// Remove pops the item with the smallest key.
func (p *Priority[T]) Remove() (T, error) {
	if p.pq.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	e := heap.Pop(&p.pq).(entry[T])

	return e.item, nil
}

// IsEmpty reports whether the queue has no pending items.
func (p *Priority[T]) IsEmpty() bool { return p.pq.Len() == 0 }

// Len returns the number of pending items.
func (p *Priority[T]) Len() int { return p.pq.Len() }

// entry pairs an item with its cached key and insertion sequence.
type entry[T any] struct {
	item T
	key  float64
	seq  uint64
}

// entryPQ implements heap.Interface ordered by (key, seq) ascending.
type entryPQ[T any] []entry[T]

// Len returns the number of entries in the heap.
func (pq entryPQ[T]) Len() int { return len(pq) }

// Less orders by key, then by insertion sequence.
func (pq entryPQ[T]) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq entryPQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an entry[T].
func (pq *entryPQ[T]) Push(x any) { *pq = append(*pq, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *entryPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{}
	*pq = old[:n-1]

	return e
}
