package search

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/frontier"
)

// run holds the mutable state of a single search invocation. A fresh run is
// created for every call, so a Searcher carries no run-scoped fields.
type run[S comparable] struct {
	problem  Problem[S]
	opts     *Options
	strategy Strategy
	tree     *Tree[S]
	front    frontier.Frontier[int]
	explored map[S]struct{} // nil for tree search
	limit    int            // Unlimited disables the depth gate
	budget   int            // expansions allowed; 0 means no cap
	cnt      int            // expansion counter
	maxFront int
}

// loop is the shared skeleton of the tree, graph and depth-limited searches.
// It returns the goal's node ID when status is Found.
func (r *run[S]) loop() (goal int, status Status, err error) {
	r.emitGenerate(0)
	r.front.Insert(0)
	r.maxFront = 1

	for {
		// cancellation check (once per loop)
		if err := r.opts.Ctx.Err(); err != nil {
			return NoParent, NotFound, err
		}
		if r.front.IsEmpty() {
			return NoParent, NotFound, nil
		}

		id, err := r.front.Remove()
		if err != nil {
			return NoParent, NotFound, fmt.Errorf("%w: %v", ErrFrontierContract, err)
		}
		n := r.tree.nodes[id]

		if r.problem.GoalTest(n.State) {
			r.opts.OnGoal(r.tree.event(r.strategy, id))
			return id, Found, nil
		}

		if !r.admit(n) {
			continue
		}
		if r.budget > 0 && r.cnt >= r.budget {
			return NoParent, NotFound, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.cnt)
		}
		r.expand(id)
		r.cnt++
	}
}

// admit is the expansion gate: depth limit first, then the explored set.
// A state is marked explored only when it is admitted, so several frontier
// entries for the same state may coexist until the first one is expanded.
func (r *run[S]) admit(n Node[S]) bool {
	if r.limit != Unlimited && n.Depth >= r.limit {
		return false
	}
	if r.explored != nil {
		if _, seen := r.explored[n.State]; seen {
			return false
		}
		r.explored[n.State] = struct{}{}
	}

	return true
}

// expand tags id with the current counter, generates one child per successor
// and hands the batch to the frontier.
func (r *run[S]) expand(id int) {
	r.tree.nodes[id].Order = r.cnt
	r.opts.OnExpand(r.tree.event(r.strategy, id))

	state := r.tree.nodes[id].State
	succ := r.problem.Successors(state)
	children := make([]int, 0, len(succ))
	for _, s := range succ {
		child := r.tree.add(id, s, r.problem.StepCost(state, s))
		r.emitGenerate(child)
		children = append(children, child)
	}
	r.front.InsertAll(children)

	if l := r.front.Len(); l > r.maxFront {
		r.maxFront = l
	}
}

// emitGenerate fires OnGenerate for node id.
func (r *run[S]) emitGenerate(id int) {
	r.opts.OnGenerate(r.tree.event(r.strategy, id))
}

// result reconstructs the solution for goal without touching any node.
func (r *run[S]) result(goal int, status Status) Result[S] {
	res := Result[S]{
		Strategy:   r.strategy,
		Status:     status,
		Expansions: r.cnt,
		Stats: Stats{
			Generated:       r.tree.Len(),
			MaxFrontier:     r.maxFront,
			TotalExpansions: r.cnt,
			Rounds:          1,
			Limit:           r.limit,
		},
	}
	if status == Found {
		res.Path = r.tree.PathTo(goal)
		res.Cost = r.tree.nodes[goal].PathCost
	}
	if r.opts.Trace {
		res.Tree = r.tree
	}

	return res
}
