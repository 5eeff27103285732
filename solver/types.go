package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/splitgrow/core"
)

// Sentinel errors for Solve.
var (
	// ErrEmptyInput is returned for an empty node list.
	ErrEmptyInput = errors.New("solver: no nodes")

	// ErrNoSolution is returned when no construction trace was found.
	ErrNoSolution = errors.New("solver: no solution")

	// ErrInconclusive accompanies ErrNoSolution when a budget stopped the search
	// before every tree was exhausted.
	ErrInconclusive = errors.New("solver: search budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// DefaultMaxIterations is the per-tree expansion cap.
const DefaultMaxIterations = 100000

// progressEvery is the expansion interval between progress log lines.
const progressEvery = 10000

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds the budgets and hooks of a Solve call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxIterations caps expansions per spanning tree. Must be > 0.
	MaxIterations int

	// MaxTotalIterations caps expansions across all trees; 0 disables it.
	MaxTotalIterations int

	// OnTopology is called before each spanning tree is searched, with its
	// 0-based index and edge set.
	OnTopology func(i int, edges []core.Edge)

	// OnExpand is called for every dequeued state with its distance from the
	// input configuration. The graph must not be mutated.
	OnExpand func(depth int, g *core.Graph)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context,
// DefaultMaxIterations per tree, no global budget and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxIterations: DefaultMaxIterations,
		OnTopology:    func(int, []core.Edge) {},
		OnExpand:      func(int, *core.Graph) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations sets the per-tree expansion cap. n <= 0 is an
// ErrOptionViolation.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithMaxTotalIterations sets the global expansion budget; 0 means unlimited.
// n < 0 is an ErrOptionViolation.
func WithMaxTotalIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTotalIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTotalIterations = n
	}
}

// WithOnTopology registers a hook called before each tree is searched.
func WithOnTopology(fn func(i int, edges []core.Edge)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnTopology is nil", ErrOptionViolation)
			return
		}
		o.OnTopology = fn
	}
}

// WithOnExpand registers a hook called for every expanded state.
func WithOnExpand(fn func(depth int, g *core.Graph)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnExpand is nil", ErrOptionViolation)
			return
		}
		o.OnExpand = fn
	}
}

// Stats summarizes the work done by a Solve call.
type Stats struct {
	// Topologies is the number of spanning trees searched.
	Topologies int `json:"topologies"`
	// Expansions is the number of states dequeued across all trees.
	Expansions int `json:"expansions"`
	// Capped is the number of trees abandoned at MaxIterations.
	Capped int `json:"capped"`
	// Winner is the index of the tree that produced the trace, or -1.
	Winner int `json:"winner"`
}

// Solution is a successful Solve result: the input nodes joined by the
// winning tree, with the trace that builds them from a single white node.
type Solution struct {
	Puzzle *core.Puzzle `json:"puzzle"`
	Stats  Stats        `json:"stats"`
}
