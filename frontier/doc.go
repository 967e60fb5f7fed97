// Package frontier provides the ordered containers that drive a state-space
// search: the set of generated but not yet expanded items.
//
// What
//
//   - A single contract, Frontier[T], with Insert, InsertAll, Remove, IsEmpty and Len.
//   - Three strategies satisfying it:
//   - FIFO     – queue discipline, earliest inserted first (breadth-first).
//   - LIFO     – stack discipline, latest inserted first (depth-first).
//   - Priority – min-heap on a key function supplied at construction
//     (uniform-cost, greedy best-first, A*).
//
// Why
//
//	Every classical uninformed and informed search differs only in the order in
//	which it pulls items out of the frontier. Keeping that order behind one
//	interface lets the search loop stay identical across strategies.
//
// Determinism
//
//	FIFO.InsertAll and LIFO.InsertAll both make items[0] the first of the batch to
//	be removed, so a caller that inserts successors in enumeration order sees them
//	in enumeration order.
//	Priority breaks ties between equal keys by insertion sequence (stable FIFO among
//	ties). The key is evaluated exactly once, at insert time.
//
// Errors
//
//	Remove on an empty frontier returns ErrEmpty. Callers are expected to check
//	IsEmpty first; ErrEmpty signals a broken precondition, not a search outcome.
//
// Complexity
//
//	FIFO, LIFO: O(1) amortized per operation.
//	Priority:   O(log n) Insert and Remove, O(1) IsEmpty and Len.
package frontier
