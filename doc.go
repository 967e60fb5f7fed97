// Package lvlsearch is a generic state-space search engine: describe a
// problem once and solve it with any classical uninformed or informed
// strategy.
//
// 🚀 What is in lvlsearch?
//
//	• frontier/      FIFO, LIFO and stable min-priority frontiers
//	• search/        tree, graph and depth-limited loops, twelve strategies,
//	                 iterative deepening, solution reconstruction, traces
//	• graphproblem/  weighted graphs with heuristic tables, YAML loader,
//	                 generators (chain, binary tree, lattice, random sparse)
//	• gridworld/     cost maps with walls, 4/8-connectivity, admissible
//	                 heuristics, rendering
//	• metrics/       Prometheus counters fed by search hooks
//	• config/        defaults → YAML/JSON file → LVLSEARCH_* env
//	• cmd/lvlsearch  the command-line driver
//
// ✨ Why lvlsearch?
//
//   - One Problem interface, every strategy – swap BFS for A* with one argument
//   - Deterministic – equal-priority nodes leave in insertion order
//   - Run-scoped state – a Searcher is safe to share between goroutines
//   - Observable – hooks, slog debug records and an optional node trace
//
// Quick example, the classic diamond:
//
//	    A──1──B
//	    │     │
//	    5     1
//	    │     │
//	    C──1──D
//
// uniform-cost search from A to D returns [A B D] at cost 2, while
// breadth-first search with C listed first returns [A C D].
//
//	go get github.com/katalvlaran/lvlsearch
package lvlsearch
