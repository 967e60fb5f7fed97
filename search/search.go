// Package search runs classical state-space searches over any Problem.
package search

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/frontier"
)

// Searcher binds a Problem to a set of Options and exposes every strategy.
//
// A Searcher holds no per-run state: each call builds its own frontier,
// explored set, counter and node log. Concurrent calls are safe as long as the
// Problem itself tolerates concurrent reads.
type Searcher[S comparable] struct {
	problem   Problem[S]
	heuristic func(S) float64 // nil unless problem is a HeuristicProblem
	opts      Options
}

// New validates p and opts and returns a Searcher.
// Returns ErrNilProblem for a nil problem and ErrOptionViolation for bad options.
func New[S comparable](p Problem[S], opts ...Option) (*Searcher[S], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Searcher[S]{problem: p, opts: o}
	if hp, ok := p.(HeuristicProblem[S]); ok {
		s.heuristic = hp.Heuristic
	}

	return s, nil
}

// Search is shorthand for New followed by Run.
func Search[S comparable](p Problem[S], strategy Strategy, opts ...Option) (Result[S], error) {
	s, err := New(p, opts...)
	if err != nil {
		return Result[S]{Strategy: strategy}, err
	}

	return s.Run(strategy)
}

// Heuristic returns the problem's heuristic, or nil if it has none.
func (s *Searcher[S]) Heuristic() func(S) float64 { return s.heuristic }

// Run executes the named strategy.
//
// DepthLimitedTree and DepthLimitedGraph use WithMaxDepth as their limit and
// fail with ErrOptionViolation when it is unset.
func (s *Searcher[S]) Run(strategy Strategy) (Result[S], error) {
	switch strategy {
	case IterativeDeepeningTree, IterativeDeepeningGraph:
		return s.iterativeDeepening(strategy)
	case DepthLimitedTree, DepthLimitedGraph:
		if s.opts.MaxDepth == Unlimited {
			return Result[S]{Strategy: strategy},
				fmt.Errorf("%w: %s requires WithMaxDepth", ErrOptionViolation, strategy)
		}
		return s.once(strategy, s.opts.MaxDepth)
	}
	if strategy < 0 || strategy > DepthLimitedGraph {
		return Result[S]{Strategy: strategy}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}

	return s.once(strategy, Unlimited)
}

// BreadthFirstTreeSearch runs tree search with a FIFO frontier.
func (s *Searcher[S]) BreadthFirstTreeSearch() (Result[S], error) { return s.Run(BreadthFirstTree) }

// DepthFirstTreeSearch runs tree search with a LIFO frontier.
func (s *Searcher[S]) DepthFirstTreeSearch() (Result[S], error) { return s.Run(DepthFirstTree) }

// UniformCostTreeSearch runs tree search ordered by path cost.
func (s *Searcher[S]) UniformCostTreeSearch() (Result[S], error) { return s.Run(UniformCostTree) }

// GreedyBestFirstTreeSearch runs tree search ordered by the heuristic.
func (s *Searcher[S]) GreedyBestFirstTreeSearch() (Result[S], error) {
	return s.Run(GreedyBestFirstTree)
}

// AStarTreeSearch runs tree search ordered by path cost plus heuristic.
func (s *Searcher[S]) AStarTreeSearch() (Result[S], error) { return s.Run(AStarTree) }

// BreadthFirstGraphSearch runs graph search with a FIFO frontier.
func (s *Searcher[S]) BreadthFirstGraphSearch() (Result[S], error) {
	return s.Run(BreadthFirstGraph)
}

// DepthFirstGraphSearch runs graph search with a LIFO frontier.
func (s *Searcher[S]) DepthFirstGraphSearch() (Result[S], error) { return s.Run(DepthFirstGraph) }

// UniformCostGraphSearch runs graph search ordered by path cost.
func (s *Searcher[S]) UniformCostGraphSearch() (Result[S], error) {
	return s.Run(UniformCostGraph)
}

// GreedyBestFirstGraphSearch runs graph search ordered by the heuristic.
func (s *Searcher[S]) GreedyBestFirstGraphSearch() (Result[S], error) {
	return s.Run(GreedyBestFirstGraph)
}

// AStarGraphSearch runs graph search ordered by path cost plus heuristic.
func (s *Searcher[S]) AStarGraphSearch() (Result[S], error) { return s.Run(AStarGraph) }

// IterativeDeepeningTreeSearch runs depth-limited tree search with limits
// 0, 1, 2, ... until a goal is found. Without WithMaxDepth, WithMaxExpansions
// or a cancellable context it does not return when no goal is reachable.
func (s *Searcher[S]) IterativeDeepeningTreeSearch() (Result[S], error) {
	return s.Run(IterativeDeepeningTree)
}

// IterativeDeepeningGraphSearch is IterativeDeepeningTreeSearch with an
// explored set in every round.
func (s *Searcher[S]) IterativeDeepeningGraphSearch() (Result[S], error) {
	return s.Run(IterativeDeepeningGraph)
}

// DepthLimitedTreeSearch runs one tree search that expands only nodes with
// depth < limit.
func (s *Searcher[S]) DepthLimitedTreeSearch(limit int) (Result[S], error) {
	if limit < 0 {
		return Result[S]{Strategy: DepthLimitedTree},
			fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, limit)
	}

	return s.once(DepthLimitedTree, limit)
}

// DepthLimitedGraphSearch is DepthLimitedTreeSearch with an explored set.
func (s *Searcher[S]) DepthLimitedGraphSearch(limit int) (Result[S], error) {
	if limit < 0 {
		return Result[S]{Strategy: DepthLimitedGraph},
			fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, limit)
	}

	return s.once(DepthLimitedGraph, limit)
}

// once performs a single loop for strategy with the given depth limit.
func (s *Searcher[S]) once(strategy Strategy, limit int) (Result[S], error) {
	r, err := s.newRun(strategy, limit, s.opts.MaxExpansions)
	if err != nil {
		return Result[S]{Strategy: strategy}, err
	}
	goal, status, err := r.loop()
	res := r.result(goal, status)
	s.logResult(res, err)

	return res, err
}

// newRun prepares fresh run state with the frontier matching strategy.
func (s *Searcher[S]) newRun(strategy Strategy, limit, budget int) (*run[S], error) {
	if strategy.Informed() && s.heuristic == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoHeuristic, strategy)
	}
	r := &run[S]{
		problem:  s.problem,
		opts:     &s.opts,
		strategy: strategy,
		tree:     newTree(s.problem.InitialState()),
		limit:    limit,
		budget:   budget,
	}
	if strategy.Graph() {
		r.explored = make(map[S]struct{})
	}
	r.front = s.newFrontier(strategy, r.tree)

	return r, nil
}

// newFrontier maps a strategy to its ordering over node IDs in tree.
func (s *Searcher[S]) newFrontier(strategy Strategy, tree *Tree[S]) frontier.Frontier[int] {
	switch strategy {
	case BreadthFirstTree, BreadthFirstGraph:
		return frontier.NewFIFO[int]()
	case UniformCostTree, UniformCostGraph:
		return frontier.NewPriority(func(id int) float64 {
			return tree.nodes[id].PathCost
		})
	case GreedyBestFirstTree, GreedyBestFirstGraph:
		h := s.heuristic
		return frontier.NewPriority(func(id int) float64 {
			return h(tree.nodes[id].State)
		})
	case AStarTree, AStarGraph:
		h := s.heuristic
		return frontier.NewPriority(func(id int) float64 {
			n := tree.nodes[id]
			return n.PathCost + h(n.State)
		})
	default:
		// depth-first, depth-limited and iterative deepening
		return frontier.NewLIFO[int]()
	}
}

// logResult writes a debug record for a finished run.
func (s *Searcher[S]) logResult(res Result[S], err error) {
	l := s.opts.Logger
	if err != nil {
		l.Debug("search aborted",
			"strategy", res.Strategy.String(),
			"expansions", res.Stats.TotalExpansions,
			"err", err,
		)
		return
	}
	l.Debug("search finished",
		"strategy", res.Strategy.String(),
		"status", res.Status.String(),
		"cost", res.Cost,
		"expansions", res.Expansions,
		"generated", res.Stats.Generated,
		"rounds", res.Stats.Rounds,
	)
}
