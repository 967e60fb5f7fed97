package graphproblem

import (
	"fmt"
	"math"
	"sync"
)

// Graph is a weighted graph with a heuristic table, safe for concurrent use.
//
// Vertices and out-edges keep insertion order; that order is the successor
// order seen by a search.
type Graph struct {
	mu         sync.RWMutex
	undirected bool
	order      []string
	out        map[string][]Edge
	heuristic  map[string]float64
}

// New returns an empty directed Graph, or an undirected one with WithUndirected.
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		out:       make(map[string][]Edge),
		heuristic: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Undirected reports whether AddEdge mirrors arcs.
func (g *Graph) Undirected() bool { return g.undirected }

// AddVertex inserts id if absent. Re-adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id; caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.out[id]; ok {
		return
	}
	g.out[id] = nil
	g.order = append(g.order, id)
}

// AddEdge inserts from→to with the given cost, creating missing vertices.
// In an undirected graph the reverse arc is added too (self-loops once).
// Returns ErrEmptyVertexID, ErrNegativeCost or ErrDuplicateEdge.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if cost < 0 {
		return fmt.Errorf("%w: %s→%s cost=%g", ErrNegativeCost, from, to, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Reject parallel arcs so successor lists stay duplicate-free
	if g.hasEdgeLocked(from, to) || (g.undirected && g.hasEdgeLocked(to, from)) {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}

	// 3) Store arcs
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.out[from] = append(g.out[from], Edge{From: from, To: to, Cost: cost})
	if g.undirected && from != to {
		g.out[to] = append(g.out[to], Edge{From: to, To: from, Cost: cost})
	}

	return nil
}

// hasEdgeLocked reports whether from→to exists; caller holds mu.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.out[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[id]

	return ok
}

// HasEdge reports whether the arc from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Vertices returns vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the out-edges of id in insertion order.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges, ok := g.out[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// EdgeCount returns the number of stored arcs (mirrors included).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, edges := range g.out {
		n += len(edges)
	}

	return n
}

// SetHeuristic records the cost-to-go estimate for id.
// Returns ErrEmptyVertexID or ErrInvalidHeuristic.
func (g *Graph) SetHeuristic(id string, h float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(h) {
		return fmt.Errorf("%w: %s", ErrInvalidHeuristic, id)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.heuristic[id] = h

	return nil
}

// Heuristic returns the estimate for id, or 0 if none was set.
func (g *Graph) Heuristic(id string) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.heuristic[id]
}
