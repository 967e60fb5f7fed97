package search

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NoParent is the Parent index of a root node.
const NoParent = -1

// NotExpanded is the Order of a node that was never expanded.
const NotExpanded = -1

// Node is one point of the search tree.
//
// Parent is an index into the owning Tree, never a pointer, so the
// generated-node log is a flat slice with no ownership cycles. A node's parent
// index is always smaller than its own.
type Node[S comparable] struct {
	State    S
	Parent   int
	PathCost float64
	Depth    int
	// Order is the expansion counter value when this node was expanded.
	Order int
}

// Tree is the arena of every node generated during one run, indexed by ID.
// The root has ID 0.
type Tree[S comparable] struct {
	nodes []Node[S]
}

// newTree returns an arena holding only the root for state.
func newTree[S comparable](root S) *Tree[S] {
	return &Tree[S]{nodes: []Node[S]{{
		State:    root,
		Parent:   NoParent,
		PathCost: 0,
		Depth:    0,
		Order:    NotExpanded,
	}}}
}

// add appends a child of parent and returns its ID.
func (t *Tree[S]) add(parent int, state S, stepCost float64) int {
	p := t.nodes[parent]
	t.nodes = append(t.nodes, Node[S]{
		State:    state,
		Parent:   parent,
		PathCost: p.PathCost + stepCost,
		Depth:    p.Depth + 1,
		Order:    NotExpanded,
	})

	return len(t.nodes) - 1
}

// Len returns the number of generated nodes.
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Node returns a copy of node id.
func (t *Tree[S]) Node(id int) (Node[S], bool) {
	if id < 0 || id >= len(t.nodes) {
		return Node[S]{}, false
	}

	return t.nodes[id], true
}

// Children returns the IDs of id's children in generation order.
func (t *Tree[S]) Children(id int) []int {
	var out []int
	// children are always generated after their parent
	for i := id + 1; i < len(t.nodes); i++ {
		if t.nodes[i].Parent == id {
			out = append(out, i)
		}
	}

	return out
}

// PathTo returns the states from the root to id, in that order.
func (t *Tree[S]) PathTo(id int) []S {
	n := 0
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		n++
	}
	path := make([]S, n)
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		n--
		path[n] = t.nodes[cur].State
	}

	return path
}

// event builds the hook snapshot for node id.
func (t *Tree[S]) event(strategy Strategy, id int) Event {
	n := t.nodes[id]

	return Event{
		Strategy: strategy,
		ID:       id,
		Parent:   n.Parent,
		Depth:    n.Depth,
		PathCost: n.PathCost,
		Order:    n.Order,
	}
}

// Write prints the tree depth-first from the root, indenting two spaces per
// level:
//
//	A(g=0, h=2, f=2) order=0
//	  B(g=1, h=1, f=2) order=1
//	  C(g=5, h=1, f=6)
//
// h may be nil, in which case the h and f fields are omitted.
func (t *Tree[S]) Write(w io.Writer, h func(S) float64) error {
	if len(t.nodes) == 0 {
		return nil
	}
	children := make([][]int, len(t.nodes))
	for id := 1; id < len(t.nodes); id++ {
		p := t.nodes[id].Parent
		children[p] = append(children[p], id)
	}

	bw := bufio.NewWriter(w)
	stack := []int{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[id]

		bw.WriteString(strings.Repeat("  ", n.Depth))
		if h != nil {
			hv := h(n.State)
			fmt.Fprintf(bw, "%v(g=%g, h=%g, f=%g)", n.State, n.PathCost, hv, n.PathCost+hv)
		} else {
			fmt.Fprintf(bw, "%v(g=%g)", n.State, n.PathCost)
		}
		if n.Order != NotExpanded {
			fmt.Fprintf(bw, " order=%d", n.Order)
		}
		bw.WriteByte('\n')

		kids := children[id]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}

	return bw.Flush()
}
