package search_test

import (
	"fmt"
	"math"
	"math/rand"
)

// arc is a weighted directed edge used by digraph.
type arc struct {
	to   string
	cost float64
}

// digraph is a small map-backed HeuristicProblem[string] for tests.
// Successors are returned in the order arcs were added.
type digraph struct {
	start string
	goals map[string]bool
	adj   map[string][]arc
	h     map[string]float64
}

func newDigraph(start string, goals ...string) *digraph {
	g := &digraph{
		start: start,
		goals: make(map[string]bool),
		adj:   make(map[string][]arc),
		h:     make(map[string]float64),
	}
	for _, goal := range goals {
		g.goals[goal] = true
	}

	return g
}

func (g *digraph) edge(from, to string, cost float64) *digraph {
	g.adj[from] = append(g.adj[from], arc{to: to, cost: cost})
	return g
}

func (g *digraph) InitialState() string { return g.start }
func (g *digraph) GoalTest(s string) bool { return g.goals[s] }
func (g *digraph) Heuristic(s string) float64 { return g.h[s] }

func (g *digraph) Successors(s string) []string {
	out := make([]string, 0, len(g.adj[s]))
	for _, a := range g.adj[s] {
		out = append(out, a.to)
	}

	return out
}

func (g *digraph) StepCost(from, to string) float64 {
	for _, a := range g.adj[from] {
		if a.to == to {
			return a.cost
		}
	}

	return math.Inf(1)
}

// blind hides the heuristic of a digraph.
type blind struct{ g *digraph }

func (b blind) InitialState() string { return b.g.InitialState() }
func (b blind) GoalTest(s string) bool { return b.g.GoalTest(s) }
func (b blind) Successors(s string) []string { return b.g.Successors(s) }
func (b blind) StepCost(from, to string) float64 { return b.g.StepCost(from, to) }

// diamond builds A→B(1), A→C(5), B→D(1), C→D(1) with goal D and an
// admissible heuristic.
func diamond() *digraph {
	g := newDigraph("A", "D").
		edge("A", "B", 1).
		edge("A", "C", 5).
		edge("B", "D", 1).
		edge("C", "D", 1)
	g.h = map[string]float64{"A": 2, "B": 1, "C": 1, "D": 0}

	return g
}

// randomDigraph builds a reproducible sparse graph on v vertices "n0".."n{v-1}"
// with e arcs of cost in [1, maxCost]. Duplicate arcs between one pair are skipped.
func randomDigraph(seed int64, v, e, maxCost int) *digraph {
	rnd := rand.New(rand.NewSource(seed))
	g := newDigraph("n0", fmt.Sprintf("n%d", v-1))
	seen := make(map[[2]int]bool)
	for k := 0; k < e; k++ {
		u, w := rnd.Intn(v), rnd.Intn(v)
		if u == w || seen[[2]int{u, w}] {
			continue
		}
		seen[[2]int{u, w}] = true
		g.edge(fmt.Sprintf("n%d", u), fmt.Sprintf("n%d", w), float64(1+rnd.Intn(maxCost)))
	}

	return g
}

// distances computes single-source shortest path costs by Bellman–Ford
// relaxation. With reverse=true it walks arcs backwards, giving cost-to-target.
func distances(g *digraph, src string, reverse bool) map[string]float64 {
	dist := map[string]float64{src: 0}
	for changed := true; changed; {
		changed = false
		for from, arcs := range g.adj {
			for _, a := range arcs {
				u, w := from, a.to
				if reverse {
					u, w = w, u
				}
				du, ok := dist[u]
				if !ok {
					continue
				}
				if dw, ok := dist[w]; !ok || du+a.cost < dw {
					dist[w] = du + a.cost
					changed = true
				}
			}
		}
	}

	return dist
}

// unitCopy returns g with every arc cost set to 1.
func unitCopy(g *digraph) *digraph {
	u := newDigraph(g.start)
	u.goals = g.goals
	for from, arcs := range g.adj {
		for _, a := range arcs {
			u.edge(from, a.to, 1)
		}
	}

	return u
}
