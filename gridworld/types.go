package gridworld

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for gridworld operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridworld: cell out of bounds")
	// ErrWall indicates a start or goal placed on a wall.
	ErrWall = errors.New("gridworld: cell is a wall")
	// ErrInvalidOption indicates an unknown Connectivity or Heuristic value.
	ErrInvalidOption = errors.New("gridworld: invalid option")
	// ErrInvalidFile indicates a YAML grid problem that cannot be used.
	ErrInvalidFile = errors.New("gridworld: invalid grid file")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// Heuristic names a distance estimate to the goal.
type Heuristic int

const (
	// Auto picks Manhattan for Conn4 and Octile for Conn8.
	Auto Heuristic = iota
	Manhattan
	Octile
	Chebyshev
	Zero
)

var heuristicNames = [...]string{"auto", "manhattan", "octile", "chebyshev", "zero"}

// String returns the lower-case heuristic name.
func (h Heuristic) String() string {
	if h < 0 || int(h) >= len(heuristicNames) {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
	return heuristicNames[h]
}

// ParseHeuristic maps a name back to its Heuristic. The empty name is Auto.
func ParseHeuristic(name string) (Heuristic, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Auto, nil
	}
	for i, n := range heuristicNames {
		if n == name {
			return Heuristic(i), nil
		}
	}
	return Auto, fmt.Errorf("gridworld: unknown heuristic %q", name)
}

// Cell is a grid coordinate; X is the column and Y the row.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y".
func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Option configures a Grid at construction.
type Option func(*Grid)

// WithConnectivity selects Conn4 (default) or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(g *Grid) { g.conn = c }
}

// WithHeuristic selects the estimate used by Problem.Heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(g *Grid) { g.heuristic = h }
}
