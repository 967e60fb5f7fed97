package frontier

import "errors"

// ErrEmpty is returned by Remove when the frontier holds no items.
var ErrEmpty = errors.New("frontier: remove from empty frontier")

// Frontier is an ordered container of pending items.
//
// Implementations are not safe for concurrent use; a search run owns its
// frontier exclusively.
type Frontier[T any] interface {
	// Insert adds a single item.
	Insert(item T)

	// InsertAll adds a batch of items. For FIFO and LIFO the position of an
	// item inside the batch decides its removal order relative to the others.
	InsertAll(items []T)

	// Remove pops the item of highest priority, or returns ErrEmpty.
	Remove() (T, error)

	// IsEmpty reports whether Remove would fail.
	IsEmpty() bool

	// Len returns the number of pending items.
	Len() int
}
