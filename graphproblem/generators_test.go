package graphproblem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/graphproblem"
	"github.com/katalvlaran/lvlsearch/search"
)

func TestGenerators_BadSize(t *testing.T) {
	_, err := graphproblem.Chain(0)
	assert.ErrorIs(t, err, graphproblem.ErrBadSize)
	_, err = graphproblem.BinaryTree(0)
	assert.ErrorIs(t, err, graphproblem.ErrBadSize)
	_, err = graphproblem.Grid(0, 3)
	assert.ErrorIs(t, err, graphproblem.ErrBadSize)
	_, err = graphproblem.RandomSparse(5, 10, 0, 1)
	assert.ErrorIs(t, err, graphproblem.ErrBadSize)
}

func TestChain_DepthLimits(t *testing.T) {
	g, err := graphproblem.Chain(6)
	require.NoError(t, err)
	p, err := g.Problem("v0", "v5")
	require.NoError(t, err)
	s, err := search.New[string](p)
	require.NoError(t, err)

	res, err := s.DepthLimitedTreeSearch(4)
	require.NoError(t, err)
	assert.False(t, res.Found())

	res, err = s.DepthLimitedTreeSearch(5)
	require.NoError(t, err)
	assert.Len(t, res.Path, 6)

	res, err = s.IterativeDeepeningTreeSearch()
	require.NoError(t, err)
	assert.Equal(t, 6, res.Stats.Rounds)
	assert.Equal(t, 5, res.Expansions)
}

func TestBinaryTree_BreadthFirst(t *testing.T) {
	g, err := graphproblem.BinaryTree(4) // 15 vertices
	require.NoError(t, err)
	assert.Len(t, g.Vertices(), 15)

	p, err := g.Problem("1", "15")
	require.NoError(t, err)
	res, err := search.Search[string](p, search.BreadthFirstTree)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "7", "15"}, res.Path)
	// 1..14 are removed and expanded before 15 is removed
	assert.Equal(t, 14, res.Expansions)
}

func TestGrid_AStarBeatsUniformCost(t *testing.T) {
	g, err := graphproblem.Grid(8, 8)
	require.NoError(t, err)
	p, err := g.Problem("4,4", "7,7")
	require.NoError(t, err)

	ucs, err := search.Search[string](p, search.UniformCostGraph)
	require.NoError(t, err)
	astar, err := search.Search[string](p, search.AStarGraph)
	require.NoError(t, err)

	assert.Equal(t, 6.0, ucs.Cost)
	assert.Equal(t, 6.0, astar.Cost)
	assert.Less(t, astar.Expansions, ucs.Expansions)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := graphproblem.RandomSparse(50, 150, 9, 42)
	require.NoError(t, err)
	b, err := graphproblem.RandomSparse(50, 150, 9, 42)
	require.NoError(t, err)
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, v := range a.Vertices() {
		na, _ := a.Neighbors(v)
		nb, _ := b.Neighbors(v)
		assert.Equal(t, na, nb)
	}
	assert.LessOrEqual(t, a.EdgeCount(), 150)
}
