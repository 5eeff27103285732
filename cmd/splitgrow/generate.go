package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitgrow/generator"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		nodes  int
		seed   int64
		asJSON bool
		save   bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random puzzle and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("nodes") {
				cfg.Generator.Nodes = nodes
			}
			if cmd.Flags().Changed("seed") {
				cfg.Generator.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			p, err := generator.Generate(cfg.Generator.Nodes, cfg.GeneratorOptions(a.ctx)...)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(p); err != nil {
					return err
				}
			} else {
				fmt.Fprint(a.out, draw(p.Graph))
				fmt.Fprintf(a.out, "nodes: %d  steps: %d\n", p.Graph.Len(), p.Steps())
			}

			if save {
				cat, err := a.openCatalog()
				if err != nil {
					return err
				}
				defer cat.Close()
				entry, added, err := cat.Add(p)
				if err != nil {
					return err
				}
				state := "exists"
				if added {
					state = "added"
				}
				fmt.Fprintf(a.out, "catalog: %s %s\n", state, entry.ID)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&nodes, "nodes", "n", 0, "target node count (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed, 0 seeds from the clock")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the puzzle and its trace as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "store the puzzle in the catalog")

	return cmd
}
