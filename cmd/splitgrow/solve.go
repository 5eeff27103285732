package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitgrow/core"
	"github.com/katalvlaran/splitgrow/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "solve FILE|-",
		Short: "Find a construction trace for a JSON list of {gx,gy,color} nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := readNodes(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts, cancel := a.cfg.SolverOptions(a.ctx)
			defer cancel()
			sol, err := solver.Solve(nodes, opts...)
			switch {
			case errors.Is(err, solver.ErrInconclusive):
				fmt.Fprintln(a.out, "inconclusive: search budget exhausted")
				return nil
			case errors.Is(err, solver.ErrNoSolution):
				fmt.Fprintln(a.out, "no solution")
				return nil
			case err != nil:
				return err
			}

			for i, g := range sol.Puzzle.Trace {
				fmt.Fprintf(a.out, "step %d:\n%s\n", i, draw(g))
			}
			fmt.Fprintf(a.out, "solved: %d steps, topology %d of %d, %d expansions\n",
				sol.Puzzle.Steps(), sol.Stats.Winner+1, sol.Stats.Topologies, sol.Stats.Expansions)

			if save {
				cat, err := a.openCatalog()
				if err != nil {
					return err
				}
				defer cat.Close()
				entry, _, err := cat.Add(sol.Puzzle)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "catalog: %s\n", entry.ID)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "store the solved puzzle in the catalog")

	return cmd
}

// readNodes decodes a JSON node list from path, or from stdin when path is "-".
func readNodes(path string, stdin io.Reader) ([]core.Node, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var nodes []core.Node
	if err := json.NewDecoder(r).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return nodes, nil
}
