// Package search defines the problem contract, strategy names, result types and
// sentinel errors for generic state-space search.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is supplied.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNoHeuristic is returned when greedy best-first or A* is requested for a
	// problem that does not implement HeuristicProblem.
	ErrNoHeuristic = errors.New("search: strategy requires a heuristic")

	// ErrOptionViolation is returned when an invalid Option or argument is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned for an unrecognised strategy name or value.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrDepthLimit is returned when iterative deepening passes WithMaxDepth
	// without reaching a goal.
	ErrDepthLimit = errors.New("search: depth limit reached")

	// ErrFrontierContract is returned if the frontier refuses a Remove that the
	// loop believed was safe. It indicates a bug in a Frontier implementation.
	ErrFrontierContract = errors.New("search: frontier contract violated")
)

// Problem is the collaborator a search consumes.
//
// Implementations must be deterministic and free of side effects visible to
// the engine. StepCost is assumed non-negative wherever optimality of
// uniform-cost or A* search is relied upon. Successors should not report the
// same state twice within one call; the engine does not check.
type Problem[S comparable] interface {
	InitialState() S
	GoalTest(state S) bool
	Successors(state S) []S
	StepCost(from, to S) float64
}

// HeuristicProblem is a Problem with a cost-to-go estimate, required by greedy
// best-first and A* search. Admissibility is not validated.
type HeuristicProblem[S comparable] interface {
	Problem[S]
	Heuristic(state S) float64
}

// Strategy names one search procedure.
type Strategy int

const (
	BreadthFirstTree Strategy = iota
	DepthFirstTree
	UniformCostTree
	GreedyBestFirstTree
	AStarTree
	BreadthFirstGraph
	DepthFirstGraph
	UniformCostGraph
	GreedyBestFirstGraph
	AStarGraph
	IterativeDeepeningTree
	IterativeDeepeningGraph
	// DepthLimitedTree and DepthLimitedGraph take their limit from WithMaxDepth
	// when run by name.
	DepthLimitedTree
	DepthLimitedGraph
)

var strategyNames = [...]string{
	BreadthFirstTree:        "bfs-tree",
	DepthFirstTree:          "dfs-tree",
	UniformCostTree:         "ucs-tree",
	GreedyBestFirstTree:     "greedy-tree",
	AStarTree:               "astar-tree",
	BreadthFirstGraph:       "bfs-graph",
	DepthFirstGraph:         "dfs-graph",
	UniformCostGraph:        "ucs-graph",
	GreedyBestFirstGraph:    "greedy-graph",
	AStarGraph:              "astar-graph",
	IterativeDeepeningTree:  "ids-tree",
	IterativeDeepeningGraph: "ids-graph",
	DepthLimitedTree:        "dls-tree",
	DepthLimitedGraph:       "dls-graph",
}

// String returns the short name used by ParseStrategy.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Graph reports whether the strategy keeps an explored set.
func (s Strategy) Graph() bool {
	switch s {
	case BreadthFirstGraph, DepthFirstGraph, UniformCostGraph, GreedyBestFirstGraph,
		AStarGraph, IterativeDeepeningGraph, DepthLimitedGraph:
		return true
	}

	return false
}

// Informed reports whether the strategy needs a HeuristicProblem.
func (s Strategy) Informed() bool {
	switch s {
	case GreedyBestFirstTree, AStarTree, GreedyBestFirstGraph, AStarGraph:
		return true
	}

	return false
}

// Strategies lists the twelve complete strategies in declaration order.
// The depth-limited variants are omitted because they need an explicit limit.
func Strategies() []Strategy {
	out := make([]Strategy, 0, IterativeDeepeningGraph+1)
	for s := BreadthFirstTree; s <= IterativeDeepeningGraph; s++ {
		out = append(out, s)
	}

	return out
}

// ParseStrategy maps a short name (case-insensitive) to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(strategyNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so strategies can be
// read from YAML and flag values.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Status is the outcome of a completed search.
type Status int

const (
	// NotFound means the frontier was exhausted without reaching a goal.
	NotFound Status = iota
	// Found means a goal node was removed from the frontier.
	Found
)

// String returns "found" or "not found".
func (s Status) String() string {
	if s == Found {
		return "found"
	}

	return "not found"
}

// Unlimited marks a run without a depth limit in Stats.Limit.
const Unlimited = -1

// Stats holds run statistics beyond the headline expansion count.
type Stats struct {
	// Generated is the number of nodes created in the final round, root included.
	Generated int
	// MaxFrontier is the largest frontier size observed in the final round.
	MaxFrontier int
	// TotalExpansions sums expansions over every round of iterative deepening.
	// For single-round strategies it equals Result.Expansions.
	TotalExpansions int
	// Rounds is the number of depth-limited rounds run (1 for other strategies).
	Rounds int
	// Limit is the depth limit of the final round, or Unlimited.
	Limit int
}

// Result is the outcome of one search.
//
// When Status is NotFound, Path is nil and Cost is zero. Expansions is the
// expansion counter of the final round, as reported by the search loop.
type Result[S comparable] struct {
	Strategy   Strategy
	Status     Status
	Path       []S
	Cost       float64
	Expansions int
	Stats      Stats
	// Tree is the generated-node log of the final round; nil unless WithTrace.
	Tree *Tree[S]
}

// Found reports whether a goal was reached.
func (r Result[S]) Found() bool { return r.Status == Found }

// String renders "(cost=C, expansions=N)\tS0 S1 ... Sk" for a found path and
// "not found (expansions=N)" otherwise.
func (r Result[S]) String() string {
	if r.Status != Found {
		return fmt.Sprintf("not found (expansions=%d)", r.Expansions)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "(cost=%g, expansions=%d)\t", r.Cost, r.Expansions)
	for i, s := range r.Path {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, s)
	}

	return b.String()
}

// Event is a state-free snapshot of a node, passed to hooks.
type Event struct {
	Strategy Strategy
	ID       int
	Parent   int
	Depth    int
	PathCost float64
	Order    int
}
