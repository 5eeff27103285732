// SPDX-License-Identifier: MIT
// Package: splitgrow/generator
//
// options.go - functional options for Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Options apply in order; later options override earlier ones.

package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/katalvlaran/splitgrow/core"
)

// Deterministic defaults.
const (
	// DefaultMaxAttempts is the consecutive-failure budget before a run stalls.
	DefaultMaxAttempts = 2000
	// DefaultGrowProbability is the chance of attempting Grow rather than Split.
	DefaultGrowProbability = 0.6
)

// Option customizes a Generate call by mutating its config.
type Option func(*config)

// config aggregates every knob of a Generate call.
type config struct {
	ctx         context.Context
	rng         *rand.Rand
	maxAttempts int
	growP       float64
	onStep      func(step int, op Op, g *core.Graph)
}

// newConfig applies opts over the defaults. A clock-seeded RNG is installed
// only when no option provided one.
func newConfig(opts ...Option) config {
	cfg := config{
		ctx:         context.Background(),
		maxAttempts: DefaultMaxAttempts,
		growP:       DefaultGrowProbability,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed installs a new RNG seeded with seed, for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts sets how many consecutive failed attempts end the run.
// Panics if n <= 0.
func WithMaxAttempts(n int) Option {
	if n <= 0 {
		panic("generator: WithMaxAttempts(n<=0)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithGrowProbability sets the probability of attempting Grow on each step.
// 0 means split only, 1 means grow only. Panics outside [0,1].
func WithGrowProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic("generator: WithGrowProbability(p outside [0,1])")
	}
	return func(c *config) {
		c.growP = p
	}
}

// WithContext makes Generate stop with ctx.Err() once ctx is done. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("generator: WithContext(nil)")
	}
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithOnStep registers a hook called after every successful operation with
// the 1-based step number, the operation and the graph. The graph is the live
// working copy: read it, do not keep or mutate it. Panics on nil.
func WithOnStep(fn func(step int, op Op, g *core.Graph)) Option {
	if fn == nil {
		panic("generator: WithOnStep(nil)")
	}
	return func(c *config) {
		c.onStep = fn
	}
}
