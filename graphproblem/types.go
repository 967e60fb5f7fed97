package graphproblem

import "errors"

// Sentinel errors for graph construction and problem binding.
var (
	// ErrEmptyVertexID indicates an empty vertex ID.
	ErrEmptyVertexID = errors.New("graphproblem: vertex ID is empty")

	// ErrVertexNotFound indicates a start or goal vertex absent from the graph.
	ErrVertexNotFound = errors.New("graphproblem: vertex not found")

	// ErrNegativeCost indicates an edge cost below zero.
	ErrNegativeCost = errors.New("graphproblem: negative edge cost")

	// ErrInvalidHeuristic indicates a heuristic estimate that is not a number.
	ErrInvalidHeuristic = errors.New("graphproblem: heuristic is NaN")

	// ErrDuplicateEdge indicates a second edge between the same ordered pair.
	ErrDuplicateEdge = errors.New("graphproblem: duplicate edge")

	// ErrNoGoal indicates a problem without goal vertices.
	ErrNoGoal = errors.New("graphproblem: no goal vertex")

	// ErrBadSize indicates a generator parameter below its minimum.
	ErrBadSize = errors.New("graphproblem: size parameter too small")

	// ErrInvalidFile indicates a YAML problem file that cannot be used.
	ErrInvalidFile = errors.New("graphproblem: invalid problem file")
)

// Edge is a weighted arc From→To. Undirected graphs store both arcs.
type Edge struct {
	From string
	To   string
	Cost float64
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithUndirected makes AddEdge insert the reverse arc as well.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}
