package gridworld

import "fmt"

// Problem is a single-goal search over a Grid. It implements
// search.HeuristicProblem[Cell].
type Problem struct {
	g           *Grid
	start, goal Cell
}

// Problem binds g to start and goal.
// Returns ErrOutOfBounds or ErrWall when either cell is unusable.
func (g *Grid) Problem(start, goal Cell) (*Problem, error) {
	for _, c := range []Cell{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
		}
		if !g.Passable(c) {
			return nil, fmt.Errorf("%w: %v", ErrWall, c)
		}
	}

	return &Problem{g: g, start: start, goal: goal}, nil
}

// Grid returns the underlying grid.
func (p *Problem) Grid() *Grid { return p.g }

// Goal returns the goal cell.
func (p *Problem) Goal() Cell { return p.goal }

// InitialState returns the start cell.
func (p *Problem) InitialState() Cell { return p.start }

// GoalTest reports whether c is the goal.
func (p *Problem) GoalTest(c Cell) bool { return c == p.goal }

// Successors returns the cells reachable from c in one move.
func (p *Problem) Successors(c Cell) []Cell { return p.g.Neighbors(c) }

// StepCost returns the cost of moving from a to b.
func (p *Problem) StepCost(a, b Cell) float64 { return p.g.MoveCost(a, b) }

// Heuristic estimates the remaining cost from c to the goal.
func (p *Problem) Heuristic(c Cell) float64 { return p.g.Estimate(c, p.goal) }

// Reachable reports whether the goal lies in the start's component.
func (p *Problem) Reachable() bool {
	labels := p.g.Components()
	return labels.Of(p.start) == labels.Of(p.goal)
}
