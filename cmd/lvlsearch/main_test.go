package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/search"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestRun_Graph(t *testing.T) {
	out, _, err := execute(t, "run", "-f", "testdata/diamond.yaml", "-s", "ucs-graph")
	require.NoError(t, err)
	assert.Contains(t, out, "ucs-graph")
	assert.Contains(t, out, "path: A B D")
	assert.Contains(t, out, "cost: 2")
	assert.Contains(t, out, "expansions: 2")
}

func TestRun_DefaultStrategyIsAStar(t *testing.T) {
	out, _, err := execute(t, "run", "-f", "testdata/romania.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "astar-graph")
	assert.Contains(t, out, "path: Arad Sibiu Rimnicu Vilcea Pitesti Bucharest")
	assert.Contains(t, out, "cost: 418")
}

func TestRun_Grid(t *testing.T) {
	out, _, err := execute(t, "run", "-f", "testdata/detour.yaml", "-s", "astar-graph")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 5")
	assert.Contains(t, out, "S***\n.##*\n...G\n")
}

func TestRun_IterativeDeepeningRounds(t *testing.T) {
	out, _, err := execute(t, "run", "-f", "testdata/diamond.yaml", "-s", "ids-tree")
	require.NoError(t, err)
	assert.Contains(t, out, "path: A B D")
	assert.Contains(t, out, "(total 3 over 3 rounds)")
}

func TestRun_TraceAndLogs(t *testing.T) {
	out, logs, err := execute(t, "run", "-f", "testdata/diamond.yaml", "-s", "astar-graph",
		"--trace", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "A(g=0, h=2, f=2) order=0")
	assert.Contains(t, logs, `"run_id"`)
	assert.Contains(t, logs, `"msg":"search finished"`)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.ErrorContains(t, err, "problem file is required")

	_, _, err = execute(t, "run", "-f", "testdata/diamond.yaml", "-s", "hill-climb")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, _, err = execute(t, "run", "-f", "testdata/diamond.yaml", "-s", "dls-tree")
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, _, err = execute(t, "run", "-f", "testdata/missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_ExpansionLimit(t *testing.T) {
	out, _, err := execute(t, "run", "-f", "testdata/romania.yaml", "-s", "bfs-tree", "--max-expansions", "3")
	assert.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.Contains(t, out, "limit")
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "compare", "-f", "testdata/diamond.yaml", "--max-expansions", "1000", "-p", "3")
	require.NoError(t, err)
	for _, st := range search.Strategies() {
		assert.Contains(t, out, st.String())
	}
	assert.Equal(t, len(search.Strategies())+1, strings.Count(out, "\n"))
}

func TestCompare_UnboundedParallelism(t *testing.T) {
	for _, p := range []string{"0", "-1"} {
		out, _, err := execute(t, "compare", "-f", "testdata/diamond.yaml", "--max-expansions", "1000", "-p", p)
		require.NoError(t, err, "-p %s", p)
		assert.Equal(t, len(search.Strategies())+1, strings.Count(out, "\n"), "-p %s", p)
	}
}

func TestTree(t *testing.T) {
	out, _, err := execute(t, "tree", "-f", "testdata/diamond.yaml", "-s", "bfs-graph")
	require.NoError(t, err)
	assert.Contains(t, out, "A(g=0, h=2, f=2) order=0\n  B(g=1, h=1, f=2) order=1")
	assert.Contains(t, out, "found")
}

func TestStrategiesAndVersion(t *testing.T) {
	out, _, err := execute(t, "strategies")
	require.NoError(t, err)
	assert.Contains(t, out, "astar-graph")
	assert.Contains(t, out, "needs heuristic")
	assert.Contains(t, out, "dls-graph")

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lvlsearch version dev\n", out)
}

func TestMetricsOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvlsearch.prom")
	_, _, err := execute(t, "run", "-f", "testdata/diamond.yaml", "-s", "bfs-graph", "--metrics-out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lvlsearch_search_runs_total{status="found",strategy="bfs-graph"} 1`)
	assert.Contains(t, string(data), `lvlsearch_search_expansions_total{strategy="bfs-graph"} 3`)
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "lvlsearch.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("strategy: dfs-graph\n"), 0o600))

	out, _, err := execute(t, "run", "--config", cfg, "-f", "testdata/diamond.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "dfs-graph")

	// flags win over the file
	out, _, err = execute(t, "run", "--config", cfg, "-f", "testdata/diamond.yaml", "-s", "bfs-graph")
	require.NoError(t, err)
	assert.Contains(t, out, "bfs-graph")
}
