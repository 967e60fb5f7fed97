// Package search provides generic state-space search: breadth-first,
// depth-first, uniform-cost, greedy best-first, A* and iterative deepening,
// each in a tree-search and a graph-search form.
//
// What
//
//   - Problem[S] describes the space: initial state, goal test, successors and
//     step cost. HeuristicProblem[S] adds the estimate needed by greedy and A*.
//   - Searcher[S] exposes twelve entry points that are thin instantiations of
//     four loop shapes:
//   - tree search                 – expand every removed non-goal node
//   - graph search                – expand only states not yet explored
//   - depth-limited tree search   – expand only nodes with depth < limit
//   - depth-limited graph search  – both gates
//   - Result[S] is an explicit Found/NotFound value with the root-to-goal path,
//     its cost, the expansion count and extra Stats. A missing path is never an
//     error.
//
// Why
//
//	The strategies differ only in the frontier discipline (package frontier)
//	and in the expansion gate; one loop serves all of them.
//
// Semantics worth knowing
//
//   - The goal test runs when a node is removed from the frontier, not when it
//     is generated.
//   - Graph search marks a state explored when it is expanded. The same state
//     can therefore sit in the frontier several times; later copies are
//     skipped when removed.
//   - Every node carries Order, the expansion counter value at which it was
//     expanded (NotExpanded otherwise).
//   - Iterative deepening restarts from limit 0 and keeps deepening until a goal
//     is found. On an unreachable goal it runs forever unless the caller bounds
//     it with WithMaxDepth, WithMaxExpansions or a cancellable WithContext;
//     those bounds return an error, not NotFound.
//
// Determinism
//
//	Successors are pushed in the order the Problem returns them. FIFO and LIFO
//	frontiers both remove a batch in that order; priority frontiers break ties
//	by insertion order. Given a deterministic Problem, every run of the same
//	strategy yields an identical Result.
//
// Concurrency
//
//	A run is single-threaded and synchronous. A Searcher has no run-scoped
//	fields, so one Searcher may be shared by concurrent calls.
//
// Example
//
//	s, err := search.New[string](problem)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := s.AStarGraphSearch()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Println(res) // (cost=2, expansions=2)	A B D
//	}
package search
