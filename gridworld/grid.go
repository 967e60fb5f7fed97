package gridworld

import (
	"fmt"
	"math"
)

// Grid is an immutable rectangular cost map.
// cells[y][x] holds the original input value.
type Grid struct {
	width, height int
	cells         [][]int
	conn          Connectivity
	heuristic     Heuristic
	minCost       int // cheapest passable cell, 0 if none
	offsets       [][2]int
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func New(values [][]int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{width: w, height: h, cells: make([][]int, h)}
	for y := 0; y < h; y++ {
		g.cells[y] = make([]int, w)
		copy(g.cells[y], values[y])
		for _, v := range values[y] {
			if v > 0 && (g.minCost == 0 || v < g.minCost) {
				g.minCost = v
			}
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.conn != Conn4 && g.conn != Conn8 {
		return nil, fmt.Errorf("%w: connectivity %d", ErrInvalidOption, int(g.conn))
	}
	if g.heuristic < Auto || g.heuristic > Zero {
		return nil, fmt.Errorf("%w: heuristic %d", ErrInvalidOption, int(g.heuristic))
	}

	g.offsets = offsets4
	if g.conn == Conn8 {
		g.offsets = offsets8
	}
	if g.heuristic == Auto {
		g.heuristic = Manhattan
		if g.conn == Conn8 {
			g.heuristic = Octile
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Connectivity returns the neighbor rule.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// HeuristicKind returns the estimate Problem.Heuristic uses.
func (g *Grid) HeuristicKind() Heuristic { return g.heuristic }

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Value returns the stored value at c, or 0 outside the grid.
func (g *Grid) Value(c Cell) int {
	if !g.InBounds(c) {
		return 0
	}
	return g.cells[c.Y][c.X]
}

// Passable reports whether c is inside the grid and not a wall.
func (g *Grid) Passable(c Cell) bool { return g.Value(c) > 0 }

// Neighbors returns the passable cells reachable from c in one move, in
// clockwise order starting north. A diagonal move needs both orthogonal
// cells it passes to be passable.
func (g *Grid) Neighbors(c Cell) []Cell {
	if !g.Passable(c) {
		return nil
	}
	out := make([]Cell, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.Passable(n) {
			continue
		}
		if d[0] != 0 && d[1] != 0 &&
			(!g.Passable(Cell{X: c.X + d[0], Y: c.Y}) || !g.Passable(Cell{X: c.X, Y: c.Y + d[1]})) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// MoveCost returns the cost of stepping from a to an adjacent cell b, or
// +Inf when the move is not allowed.
func (g *Grid) MoveCost(a, b Cell) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return math.Inf(1)
	}
	for _, n := range g.Neighbors(a) {
		if n != b {
			continue
		}
		cost := float64(g.cells[b.Y][b.X])
		if dx != 0 && dy != 0 {
			cost *= math.Sqrt2
		}
		return cost
	}

	return math.Inf(1)
}

// Estimate returns the configured distance estimate from a to b, scaled by
// the cheapest passable cell.
func (g *Grid) Estimate(a, b Cell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	var d float64
	switch g.heuristic {
	case Manhattan:
		d = dx + dy
	case Octile:
		d = math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
	case Chebyshev:
		d = math.Max(dx, dy)
	default:
		return 0
	}

	return d * float64(g.minCost)
}
