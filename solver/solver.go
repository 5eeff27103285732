package solver

import (
	"fmt"

	"github.com/katalvlaran/splitgrow/common"
	"github.com/katalvlaran/splitgrow/core"
	"github.com/katalvlaran/splitgrow/spantree"
)

// MethodSolve prefixes errors returned by Solve.
const MethodSolve = "Solve"

// Solve searches for a construction trace that produces nodes from a single
// white node. Only positions and colors of nodes are used; node IDs in the
// returned puzzle are the input indices.
//
// Returns ErrOptionViolation, ErrEmptyInput, core.ErrDuplicatePosition,
// ErrNoSolution (possibly together with ErrInconclusive) or a context error.
func Solve(nodes []core.Node, opts ...Option) (*Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("%s: %w", MethodSolve, ErrEmptyInput)
	}
	nodes = core.Renumber(nodes)
	whites := 0
	cells := make(map[core.Point]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := cells[n.Pos()]; dup {
			return nil, fmt.Errorf("%s: cell %v: %w", MethodSolve, n.Pos(), core.ErrDuplicatePosition)
		}
		cells[n.Pos()] = struct{}{}
		if n.Color == core.White {
			whites++
		}
	}
	// Every configuration reachable from a white root keeps at least one
	// white node, so an all-black input needs no search.
	if whites == 0 {
		return nil, fmt.Errorf("%s: no white node: %w", MethodSolve, ErrNoSolution)
	}

	log := common.Logger(o.Ctx).WithField("nodes", len(nodes))
	stats := Stats{Winner: -1}
	seen := make(map[string]struct{})
	inconclusive := false

topologies:
	for edges := range spantree.Enumerate(nodes) {
		key := spantree.EdgeSetKey(edges)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		start, err := core.NewGraphFrom(nodes, edges)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodSolve, err)
		}
		idx := stats.Topologies
		o.OnTopology(idx, edges)
		stats.Topologies++

		w := newWalker(&o, log, &stats)
		goal, res, err := w.search(start)
		if err != nil {
			return nil, fmt.Errorf("%s: topology %d: %w", MethodSolve, idx, err)
		}
		switch res {
		case resultFound:
			stats.Winner = idx
			log.WithField("topology", idx).
				WithField("expansions", stats.Expansions).
				Debug("solution found")
			return &Solution{
				Puzzle: &core.Puzzle{Graph: start.Clone(), Trace: goal.path()},
				Stats:  stats,
			}, nil
		case resultCapped:
			stats.Capped++
			inconclusive = true
			log.WithField("topology", idx).Debug("topology capped")
		case resultBudget:
			inconclusive = true
			log.WithField("expansions", stats.Expansions).Debug("search budget exhausted")
			break topologies
		}
	}

	if inconclusive {
		return nil, fmt.Errorf("%s: %d topologies, %d capped, %d expansions: %w: %w",
			MethodSolve, stats.Topologies, stats.Capped, stats.Expansions, ErrNoSolution, ErrInconclusive)
	}

	return nil, fmt.Errorf("%s: %d topologies exhausted: %w", MethodSolve, stats.Topologies, ErrNoSolution)
}
