// Package metrics exports Prometheus counters and histograms for search runs.
//
// A Recorder owns one set of collectors registered on a caller-supplied
// registry. Its Options feed the per-node counters through search hooks;
// Observe records the outcome of a finished run.
//
// All operations are safe for concurrent use.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvlsearch/search"
)

// DefaultNamespace prefixes every metric name unless overridden.
const DefaultNamespace = "lvlsearch"

const subsystem = "search"

// Run outcomes used as the status label.
const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
	StatusLimit    = "limit"
	StatusCanceled = "canceled"
	StatusError    = "error"
)

// Recorder holds the search collectors.
type Recorder struct {
	// RunsTotal counts finished runs.
	// Labels: strategy, status (found, not_found, limit, canceled, error)
	RunsTotal *prometheus.CounterVec

	// ExpansionsTotal counts expanded nodes.
	// Labels: strategy
	ExpansionsTotal *prometheus.CounterVec

	// GeneratedTotal counts generated nodes, roots included.
	// Labels: strategy
	GeneratedTotal *prometheus.CounterVec

	// SolutionCost records the path cost of found solutions.
	// Labels: strategy
	SolutionCost *prometheus.HistogramVec

	// RunDurationSeconds records wall time per run.
	// Labels: strategy
	RunDurationSeconds *prometheus.HistogramVec

	// MaxFrontier holds the peak frontier size of the latest run.
	// Labels: strategy
	MaxFrontier *prometheus.GaugeVec
}

// NewRecorder creates the collectors under namespace and registers them on
// reg. An empty namespace means DefaultNamespace. Registering twice on the
// same registry panics, as promauto does.
func NewRecorder(namespace string, reg prometheus.Registerer) *Recorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	f := promauto.With(reg)

	return &Recorder{
		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "runs_total",
				Help:      "Total search runs by strategy and outcome",
			},
			[]string{"strategy", "status"},
		),
		ExpansionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "expansions_total",
				Help:      "Total expanded nodes by strategy",
			},
			[]string{"strategy"},
		),
		GeneratedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "generated_nodes_total",
				Help:      "Total generated nodes by strategy",
			},
			[]string{"strategy"},
		),
		SolutionCost: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solution_cost",
				Help:      "Path cost of found solutions",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"strategy"},
		),
		RunDurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "run_duration_seconds",
				Help:      "Wall time of a search run in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"strategy"},
		),
		MaxFrontier: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "max_frontier",
				Help:      "Peak frontier size of the latest run",
			},
			[]string{"strategy"},
		),
	}
}

// Options returns search options that count generated and expanded nodes.
func (r *Recorder) Options() []search.Option {
	return []search.Option{
		search.WithOnGenerate(func(e search.Event) {
			r.GeneratedTotal.WithLabelValues(strategyLabel(e.Strategy)).Inc()
		}),
		search.WithOnExpand(func(e search.Event) {
			r.ExpansionsTotal.WithLabelValues(strategyLabel(e.Strategy)).Inc()
		}),
	}
}

// Observe records the outcome of a finished run.
func Observe[S comparable](r *Recorder, res search.Result[S], err error, elapsed time.Duration) {
	label := strategyLabel(res.Strategy)
	r.RunsTotal.WithLabelValues(label, Status(res, err)).Inc()
	r.RunDurationSeconds.WithLabelValues(label).Observe(elapsed.Seconds())
	if err == nil {
		r.MaxFrontier.WithLabelValues(label).Set(float64(res.Stats.MaxFrontier))
	}
	if res.Found() {
		r.SolutionCost.WithLabelValues(label).Observe(res.Cost)
	}
}

// Status classifies a run for the status label.
func Status[S comparable](res search.Result[S], err error) string {
	switch {
	case err == nil && res.Found():
		return StatusFound
	case err == nil:
		return StatusNotFound
	case errors.Is(err, search.ErrExpansionLimit), errors.Is(err, search.ErrDepthLimit):
		return StatusLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	default:
		return StatusError
	}
}

// strategyLabel returns a valid strategy name for metrics; unknown values are
// recorded as "unknown" to bound label cardinality.
func strategyLabel(s search.Strategy) string {
	if _, err := search.ParseStrategy(s.String()); err != nil {
		return "unknown"
	}
	return s.String()
}
