package graphproblem

import (
	"fmt"
	"math"
)

// Problem is a search over a Graph from one start vertex to any goal vertex.
// It implements search.HeuristicProblem[string].
type Problem struct {
	g     *Graph
	start string
	goals map[string]struct{}
}

// Problem binds g to start and goals.
// Returns ErrNoGoal when goals is empty and ErrVertexNotFound for unknown IDs.
func (g *Graph) Problem(start string, goals ...string) (*Problem, error) {
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	set := make(map[string]struct{}, len(goals))
	for _, id := range goals {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: goal %q", ErrVertexNotFound, id)
		}
		set[id] = struct{}{}
	}

	return &Problem{g: g, start: start, goals: set}, nil
}

// Graph returns the underlying graph.
func (p *Problem) Graph() *Graph { return p.g }

// Goals returns the goal vertices in graph insertion order.
func (p *Problem) Goals() []string {
	var out []string
	for _, id := range p.g.Vertices() {
		if _, ok := p.goals[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

// InitialState returns the start vertex.
func (p *Problem) InitialState() string { return p.start }

// GoalTest reports whether id is a goal vertex.
func (p *Problem) GoalTest(id string) bool {
	_, ok := p.goals[id]
	return ok
}

// Successors returns the heads of id's out-edges in insertion order.
func (p *Problem) Successors(id string) []string {
	p.g.mu.RLock()
	defer p.g.mu.RUnlock()
	edges := p.g.out[id]
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}

// StepCost returns the cost of from→to, or +Inf if there is no such arc.
func (p *Problem) StepCost(from, to string) float64 {
	p.g.mu.RLock()
	defer p.g.mu.RUnlock()
	for _, e := range p.g.out[from] {
		if e.To == to {
			return e.Cost
		}
	}

	return math.Inf(1)
}

// Heuristic returns the graph's estimate for id (0 when unset).
func (p *Problem) Heuristic(id string) float64 { return p.g.Heuristic(id) }
