package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/splitgrow/common"
	"github.com/katalvlaran/splitgrow/core"
	"github.com/katalvlaran/splitgrow/generator"
	"github.com/katalvlaran/splitgrow/solver"
)

// verifyResult aggregates round-trip outcomes across workers.
type verifyResult struct {
	solved       atomic.Int64
	inconclusive atomic.Int64
}

func newVerifyCmd(a *app) *cobra.Command {
	var (
		count    int
		nodes    int
		parallel int
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Generate puzzles and check the solver reconstructs each of them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 || nodes < 1 || parallel < 1 {
				return errors.New("verify: --count, --nodes and --parallel must be positive")
			}

			var res verifyResult
			g, ctx := errgroup.WithContext(a.ctx)
			g.SetLimit(parallel)
			for i := 0; i < count; i++ {
				s := seed + int64(i)
				g.Go(func() error {
					return a.roundTrip(ctx, s, nodes, &res)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "verified %d/%d puzzles of %d nodes (%d inconclusive)\n",
				res.solved.Load(), count, nodes, res.inconclusive.Load())

			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 20, "number of puzzles")
	cmd.Flags().IntVar(&nodes, "nodes", 6, "nodes per puzzle")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "concurrent round-trips")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed of the first puzzle; puzzle i uses seed+i")

	return cmd
}

// roundTrip generates one puzzle, solves it from its bare nodes and checks the
// reconstruction. An inconclusive solve is counted, not failed.
func (a *app) roundTrip(ctx context.Context, seed int64, nodes int, res *verifyResult) error {
	log := common.Logger(ctx).WithField("seed", seed)

	gopts := append(a.cfg.GeneratorOptions(ctx), generator.WithSeed(seed))
	p, err := generator.Generate(nodes, gopts...)
	if err != nil {
		return err
	}

	sopts, cancel := a.cfg.SolverOptions(ctx)
	defer cancel()
	sol, err := solver.Solve(p.Graph.Nodes(), sopts...)
	if err != nil {
		if errors.Is(err, solver.ErrInconclusive) {
			log.Warn("solver inconclusive")
			res.inconclusive.Add(1)
			return nil
		}
		return fmt.Errorf("seed %d: %w", seed, err)
	}
	if !core.Equivalent(p.Graph, sol.Puzzle.Graph) {
		return fmt.Errorf("seed %d: reconstruction %v differs from %v",
			seed, sol.Puzzle.Graph.Signature(), p.Graph.Signature())
	}
	if err := sol.Puzzle.Validate(); err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}
	log.WithField("steps", sol.Puzzle.Steps()).Debug("round trip ok")
	res.solved.Add(1)

	return nil
}
