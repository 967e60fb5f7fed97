package graphproblem

import (
	"fmt"
	"math/rand"
)

// Chain builds the directed path v0→v1→…→v{n-1} with unit costs.
// Returns ErrBadSize when n < 1.
func Chain(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Chain: n=%d (must be ≥ 1): %w", n, ErrBadSize)
	}
	g := New()
	_ = g.AddVertex("v0")
	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i-1), fmt.Sprintf("v%d", i), 1)
	}

	return g, nil
}

// BinaryTree builds a complete binary tree of the given depth with heap
// numbering: vertex "i" has children "2i" and "2i+1", root "1". Costs are 1.
// Returns ErrBadSize when depth < 1.
func BinaryTree(depth int) (*Graph, error) {
	if depth < 1 {
		return nil, fmt.Errorf("BinaryTree: depth=%d (must be ≥ 1): %w", depth, ErrBadSize)
	}
	n := (1 << depth) - 1
	g := New()
	_ = g.AddVertex("1")
	for i := 2; i <= n; i++ {
		_ = g.AddEdge(fmt.Sprintf("%d", i/2), fmt.Sprintf("%d", i), 1)
	}

	return g, nil
}

// Grid builds an undirected rows×cols 4-neighbour lattice with IDs "r,c" and
// unit costs. Each vertex's heuristic is its Manhattan distance to the
// bottom-right corner, so Grid(r, c).Problem("0,0", corner) suits A*.
// Returns ErrBadSize when rows or cols < 1.
func Grid(rows, cols int) (*Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ 1): %w", rows, cols, ErrBadSize)
	}
	g := New(WithUndirected())
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

	// vertices in row-major order, then right and bottom edges per cell
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			_ = g.AddVertex(id(r, c))
			_ = g.SetHeuristic(id(r, c), float64((rows-1-r)+(cols-1-c)))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				_ = g.AddEdge(id(r, c), id(r, c+1), 1)
			}
			if r+1 < rows {
				_ = g.AddEdge(id(r, c), id(r+1, c), 1)
			}
		}
	}

	return g, nil
}

// RandomSparse builds a directed graph on v vertices "n0".."n{v-1}" by drawing
// e arcs uniformly with costs in [1, maxCost]. Self-loops and parallel draws
// are discarded, so the result may hold fewer than e arcs. The same seed
// always yields the same graph.
// Returns ErrBadSize when v < 1, e < 0 or maxCost < 1.
func RandomSparse(v, e, maxCost int, seed int64) (*Graph, error) {
	if v < 1 || e < 0 || maxCost < 1 {
		return nil, fmt.Errorf("RandomSparse: v=%d, e=%d, maxCost=%d: %w", v, e, maxCost, ErrBadSize)
	}
	rnd := rand.New(rand.NewSource(seed))
	g := New()
	for i := 0; i < v; i++ {
		_ = g.AddVertex(fmt.Sprintf("n%d", i))
	}
	for k := 0; k < e; k++ {
		from, to := rnd.Intn(v), rnd.Intn(v)
		cost := float64(1 + rnd.Intn(maxCost))
		if from == to {
			continue
		}
		// duplicates are rejected by AddEdge; skipping them keeps the draw sequence fixed
		_ = g.AddEdge(fmt.Sprintf("n%d", from), fmt.Sprintf("n%d", to), cost)
	}

	return g, nil
}
