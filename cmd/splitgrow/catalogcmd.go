package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitgrow/catalog"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect stored puzzles",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored puzzles",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				cat, err := a.openCatalog()
				if err != nil {
					return err
				}
				defer cat.Close()

				return cat.Each(func(e catalog.Entry) error {
					_, err := fmt.Fprintf(a.out, "%s  nodes=%d steps=%d  %s\n",
						e.ID, e.Nodes, e.Steps, e.CreatedAt.Format("2006-01-02 15:04:05"))
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "show ID",
			Short: "Print a stored puzzle and its trace",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return err
				}
				cat, err := a.openCatalog()
				if err != nil {
					return err
				}
				defer cat.Close()

				e, err := cat.Get(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s  nodes=%d steps=%d\n", e.ID, e.Nodes, e.Steps)
				for i, g := range e.Puzzle.Trace {
					fmt.Fprintf(a.out, "step %d:\n%s\n", i, draw(g))
				}

				return nil
			},
		},
	)

	return cmd
}
