package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Option configures a Searcher via functional arguments.
// An invalid Option is recorded internally and surfaced as ErrOptionViolation
// when New is called.
type Option func(*Options)

// Options holds parameters and callbacks that customise every run of a Searcher.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per loop iteration.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts a run with ErrExpansionLimit once that many
	// expansions have been performed (summed over iterative-deepening rounds).
	MaxExpansions int

	// MaxDepth, if >= 0, is the deepest limit iterative deepening may try before
	// failing with ErrDepthLimit, and the limit used by DepthLimitedTree/Graph
	// when they are run by name. Unlimited (-1) disables it.
	MaxDepth int

	// Trace keeps the generated-node log in Result.Tree.
	Trace bool

	// Logger receives debug records for run boundaries and deepening rounds.
	Logger *slog.Logger

	// OnGenerate is called for every node created, root included.
	OnGenerate func(Event)

	// OnExpand is called when a node is expanded, after its Order is set.
	OnExpand func(Event)

	// OnGoal is called with the goal node before the Result is built.
	OnGoal func(Event)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion or depth cap
//   - tracing off
//   - a logger that discards everything
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		MaxDepth:      Unlimited,
		Trace:         false,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnGenerate:    func(Event) {},
		OnExpand:      func(Event) {},
		OnGoal:        func(Event) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expansions per call.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: no cap
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxDepth bounds iterative deepening and sets the depth-limited limit.
// Negative values are rejected with ErrOptionViolation; use no option for
// unbounded deepening.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTrace keeps every generated node in Result.Tree.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnGenerate registers a callback for every generated node.
// Callbacks registered by several options run in registration order.
func WithOnGenerate(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGenerate = chain(o.OnGenerate, fn)
		}
	}
}

// WithOnExpand registers a callback for every expanded node.
func WithOnExpand(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = chain(o.OnExpand, fn)
		}
	}
}

// WithOnGoal registers a callback for the goal node.
func WithOnGoal(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGoal = chain(o.OnGoal, fn)
		}
	}
}

// chain runs prev then next; prev may be nil.
func chain(prev, next func(Event)) func(Event) {
	if prev == nil {
		return next
	}

	return func(e Event) {
		prev(e)
		next(e)
	}
}
