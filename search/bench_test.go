package search_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlsearch/search"
)

// lattice is a W×H grid of unit moves right and down; goal is the far corner.
type lattice struct{ w, h int }

type point struct{ x, y int }

func (l lattice) InitialState() point { return point{} }
func (l lattice) GoalTest(p point) bool { return p.x == l.w-1 && p.y == l.h-1 }
func (l lattice) StepCost(_, _ point) float64 { return 1 }
func (l lattice) Heuristic(p point) float64 {
	return float64((l.w - 1 - p.x) + (l.h - 1 - p.y))
}

func (l lattice) Successors(p point) []point {
	out := make([]point, 0, 2)
	if p.x+1 < l.w {
		out = append(out, point{p.x + 1, p.y})
	}
	if p.y+1 < l.h {
		out = append(out, point{p.x, p.y + 1})
	}

	return out
}

// BenchmarkGraphStrategies runs each graph strategy on a 100×100 lattice.
func BenchmarkGraphStrategies(b *testing.B) {
	s, err := search.New[point](lattice{100, 100})
	if err != nil {
		b.Fatal(err)
	}
	for _, st := range []search.Strategy{
		search.BreadthFirstGraph, search.DepthFirstGraph, search.UniformCostGraph,
		search.GreedyBestFirstGraph, search.AStarGraph,
	} {
		b.Run(st.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = s.Run(st)
			}
		})
	}
}

// BenchmarkIterativeDeepeningGraph measures the cost of repeated rounds.
func BenchmarkIterativeDeepeningGraph(b *testing.B) {
	for _, n := range []int{5, 10, 20} {
		s, _ := search.New[point](lattice{n, n})
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = s.IterativeDeepeningGraphSearch()
			}
		})
	}
}
