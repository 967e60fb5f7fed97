package metrics_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/graphproblem"
	"github.com/katalvlaran/lvlsearch/metrics"
	"github.com/katalvlaran/lvlsearch/search"
)

// diamond returns A→B(1), A→C(5), B→D(1), C→D(1) with goal D.
func diamond(t *testing.T) *graphproblem.Problem {
	t.Helper()
	g := graphproblem.New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 5))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	p, err := g.Problem("A", "D")
	require.NoError(t, err)

	return p
}

func TestRecorder_CountsNodes(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder("", reg)

	res, err := search.Search[string](diamond(t), search.UniformCostGraph, rec.Options()...)
	require.NoError(t, err)
	metrics.Observe(rec, res, err, 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.ExpansionsTotal.WithLabelValues("ucs-graph")))
	assert.Equal(t, float64(res.Stats.Generated), testutil.ToFloat64(rec.GeneratedTotal.WithLabelValues("ucs-graph")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsTotal.WithLabelValues("ucs-graph", metrics.StatusFound)))
	assert.Equal(t, float64(res.Stats.MaxFrontier), testutil.ToFloat64(rec.MaxFrontier.WithLabelValues("ucs-graph")))
	assert.Equal(t, 1, testutil.CollectAndCount(rec.SolutionCost))
}

func TestRecorder_Exposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder("test", reg)

	for _, st := range []search.Strategy{search.BreadthFirstGraph, search.AStarGraph} {
		res, err := search.Search[string](diamond(t), st, rec.Options()...)
		require.NoError(t, err)
		metrics.Observe(rec, res, err, time.Millisecond)
	}

	n, err := testutil.GatherAndCount(reg, "test_search_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	want := `
# HELP test_search_expansions_total Total expanded nodes by strategy
# TYPE test_search_expansions_total counter
test_search_expansions_total{strategy="astar-graph"} 2
test_search_expansions_total{strategy="bfs-graph"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "test_search_expansions_total"))
}

func TestStatus(t *testing.T) {
	found := search.Result[string]{Status: search.Found}
	missing := search.Result[string]{}
	cases := []struct {
		res  search.Result[string]
		err  error
		want string
	}{
		{found, nil, metrics.StatusFound},
		{missing, nil, metrics.StatusNotFound},
		{missing, fmt.Errorf("%w: 9 expansions", search.ErrExpansionLimit), metrics.StatusLimit},
		{missing, search.ErrDepthLimit, metrics.StatusLimit},
		{missing, context.Canceled, metrics.StatusCanceled},
		{missing, context.DeadlineExceeded, metrics.StatusCanceled},
		{missing, search.ErrNoHeuristic, metrics.StatusError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, metrics.Status(tc.res, tc.err), "%v", tc.err)
	}
}

func TestObserve_UnknownStrategy(t *testing.T) {
	rec := metrics.NewRecorder("", prometheus.NewRegistry())
	metrics.Observe(rec, search.Result[string]{Strategy: search.Strategy(99)}, search.ErrUnknownStrategy, 0)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsTotal.WithLabelValues("unknown", metrics.StatusError)))
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder("dup", reg)
	assert.Panics(t, func() { metrics.NewRecorder("dup", reg) })
}
