// Package graphproblem turns an explicit weighted graph into a search problem.
//
// What
//
//   - Graph: a thread-safe weighted graph with a per-vertex heuristic table.
//     Edges are directed by default; WithUndirected mirrors every AddEdge.
//   - Problem: binds a Graph to a start vertex and a goal set and implements
//     search.HeuristicProblem[string].
//   - Load / LoadFile: read a Problem from YAML.
//   - Chain, BinaryTree, Grid, RandomSparse: deterministic generators for tests,
//     benchmarks and demos.
//
// Determinism
//
//	Successors are reported in the order their edges were added, so any search
//	over a Problem is reproducible. Vertices() returns insertion order as well.
//
// YAML format
//
//	start: A
//	goals: [D]
//	directed: true        # optional, default true
//	vertices: [E]         # optional, for isolated vertices
//	edges:
//	  - {from: A, to: B, cost: 1}
//	  - {from: A, to: C, cost: 5}
//	  - {from: B, to: D, cost: 1}
//	  - {from: C, to: D, cost: 1}
//	heuristic: {A: 2, B: 1, C: 1, D: 0}
//
// Errors
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrNegativeCost, ErrInvalidHeuristic,
//	ErrDuplicateEdge, ErrNoGoal, ErrBadSize and ErrInvalidFile; test with errors.Is.
package graphproblem
