package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsearch/graphproblem"
	"github.com/katalvlaran/lvlsearch/gridworld"
	"github.com/katalvlaran/lvlsearch/metrics"
	"github.com/katalvlaran/lvlsearch/search"
)

// report is the state-type-free outcome of one run, ready for printing.
type report struct {
	RunID      string
	Strategy   search.Strategy
	Found      bool
	Status     string // metrics.Status* value
	Cost       float64
	Expansions int
	Total      int
	Generated  int
	Rounds     int
	Path       string // space-separated states
	Picture    string // grid rendering; empty for graphs
	Tree       string // Tree.Write output when traced
	Elapsed    time.Duration
	Err        error
}

// job runs strategies against one loaded problem.
type job interface {
	Kind() string
	Run(ctx context.Context, st search.Strategy, opts []search.Option) report
}

// problemJob adapts a Problem of any state type to job.
type problemJob[S comparable] struct {
	kind    string
	problem search.Problem[S]
	render  func(path []S) string // optional
	rec     *metrics.Recorder     // optional
	logger  *slog.Logger
	timeout time.Duration
}

func (j problemJob[S]) Kind() string { return j.kind }

func (j problemJob[S]) Run(ctx context.Context, st search.Strategy, opts []search.Option) report {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	runID := uuid.NewString()[:8]
	logger := j.logger.With("run_id", runID, "strategy", st.String())
	all := make([]search.Option, 0, len(opts)+4)
	all = append(all, search.WithContext(ctx), search.WithLogger(logger))
	all = append(all, opts...)
	if j.rec != nil {
		all = append(all, j.rec.Options()...)
	}

	logger.Info("search started", "problem", j.kind)
	start := time.Now()
	res, err := search.Search(j.problem, st, all...)
	elapsed := time.Since(start)
	if j.rec != nil {
		metrics.Observe(j.rec, res, err, elapsed)
	}

	rep := report{
		RunID:      runID,
		Strategy:   st,
		Found:      res.Found(),
		Status:     metrics.Status(res, err),
		Cost:       res.Cost,
		Expansions: res.Expansions,
		Total:      res.Stats.TotalExpansions,
		Generated:  res.Stats.Generated,
		Rounds:     res.Stats.Rounds,
		Elapsed:    elapsed,
		Err:        err,
	}
	if res.Found() {
		parts := make([]string, len(res.Path))
		for i, s := range res.Path {
			parts[i] = fmt.Sprint(s)
		}
		rep.Path = strings.Join(parts, " ")
		if j.render != nil {
			rep.Picture = j.render(res.Path)
		}
	}
	if res.Tree != nil {
		var h func(S) float64
		if hp, ok := j.problem.(search.HeuristicProblem[S]); ok {
			h = hp.Heuristic
		}
		var b strings.Builder
		if werr := res.Tree.Write(&b, h); werr == nil {
			rep.Tree = b.String()
		}
	}

	if err != nil {
		logger.Warn("search aborted", "error", err, "expansions", rep.Total, "elapsed", elapsed)
	} else {
		logger.Info("search finished",
			"status", rep.Status,
			"cost", rep.Cost,
			"expansions", rep.Expansions,
			"elapsed", elapsed,
		)
	}

	return rep
}

// loadJob reads a problem file. A top-level "grid" key selects the gridworld
// format; anything else is parsed as a graph problem.
func (a *app) loadJob(path string) (job, error) {
	if path == "" {
		return nil, errors.New("a problem file is required (-f)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe map[string]any
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if _, ok := probe["grid"]; ok {
		p, err := gridworld.Load(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if !p.Reachable() {
			a.logger.Warn("goal is not reachable from start; tree searches will not terminate without bounds",
				"file", path)
		}
		return problemJob[gridworld.Cell]{
			kind:    "grid",
			problem: p,
			render:  p.Grid().Render,
			rec:     a.rec,
			logger:  a.logger,
			timeout: a.timeout(),
		}, nil
	}

	p, err := graphproblem.Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return problemJob[string]{
		kind:    "graph",
		problem: p,
		rec:     a.rec,
		logger:  a.logger,
		timeout: a.timeout(),
	}, nil
}
