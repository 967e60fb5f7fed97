// Package gridworld turns a 2D grid of integer costs into a search problem
// over cells.
//
// What:
//
//   - Grid wraps a rectangular [][]int; values ≤ 0 are walls.
//   - Entering a passable cell costs its value; diagonal moves (Conn8) cost
//     value×√2 and may not cut a wall corner.
//   - Problem binds a start and goal Cell and implements
//     search.HeuristicProblem[Cell].
//   - Components labels the connected regions of passable cells, so a
//     caller can reject an unreachable goal before running a tree search.
//   - Load reads a grid problem from YAML; Render draws a path over a grid.
//
// Heuristics:
//
//   - Manhattan: admissible for Conn4 (default there).
//   - Octile: admissible for Conn8 (default there).
//   - Chebyshev: admissible for both, weaker than the defaults.
//   - Zero: turns A* into uniform-cost search.
//
// Every estimate is scaled by the cheapest passable cell so it never
// overestimates.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidOption: an unknown Connectivity or Heuristic was passed to New.
//   - ErrOutOfBounds: a start or goal cell lies outside the grid.
//   - ErrWall: a start or goal cell is a wall.
//   - ErrInvalidFile: a YAML grid problem cannot be used.
//
// Complexity:
//
//   - New: O(W×H) time and memory (deep copy).
//   - Successors: O(d), d = 4 or 8.
//   - Components: O(W×H×d), Memory: O(W×H).
package gridworld
