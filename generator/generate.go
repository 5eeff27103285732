// SPDX-License-Identifier: MIT
// Package: splitgrow/generator
//
// generate.go - random forward construction of a puzzle.

package generator

import (
	"fmt"

	"github.com/katalvlaran/splitgrow/common"
	"github.com/katalvlaran/splitgrow/core"
)

// Generate grows a random tree towards targetNodes nodes and returns it with
// its construction trace. See the package doc for the step policy.
//
// The returned puzzle may hold fewer than targetNodes nodes when the run
// stalls; check Puzzle.Graph.Len().
func Generate(targetNodes int, opts ...Option) (*core.Puzzle, error) {
	if targetNodes < 1 {
		return nil, fmt.Errorf("%s: target=%d: %w", MethodGenerate, targetNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts...)
	log := common.Logger(cfg.ctx)

	g := core.NewGraph()
	trace := []*core.Graph{g.Clone()}
	failures := 0
	for g.Len() < targetNodes && failures < cfg.maxAttempts {
		if err := cfg.ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
		}

		op := OpSplit
		if cfg.rng.Float64() < cfg.growP {
			op = OpGrow
		}
		if !attempt(g, op, &cfg) {
			failures++
			continue
		}
		failures = 0
		trace = append(trace, g.Clone())
		if cfg.onStep != nil {
			cfg.onStep(len(trace)-1, op, g)
		}
	}

	if g.Len() < targetNodes {
		log.WithField("target", targetNodes).
			WithField("reached", g.Len()).
			Debug("generator stalled")
	}

	return &core.Puzzle{Graph: g, Trace: trace}, nil
}

// attempt performs one random op on g and reports whether it applied.
// A failed attempt leaves g unchanged.
func attempt(g *core.Graph, op Op, cfg *config) bool {
	switch op {
	case OpGrow:
		n := g.NodeAt(cfg.rng.Intn(g.Len()))
		d := core.Directions[cfg.rng.Intn(len(core.Directions))]
		_, err := g.Grow(n.ID, d)
		return err == nil
	default:
		if g.NumEdges() == 0 {
			return false
		}
		e := g.EdgeAt(cfg.rng.Intn(g.NumEdges()))
		_, err := g.Split(e.U, e.V)
		return err == nil
	}
}
