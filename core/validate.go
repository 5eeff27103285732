package core

import "fmt"

const methodValidate = "Validate"

// Validate checks every tree invariant of a configuration:
// unique IDs, unique positions, unit-length edges between existing nodes,
// |E| = |N|-1 and connectivity. A connected graph with |N|-1 edges has no cycles.
//
// Errors: ErrDuplicateID, ErrDuplicatePosition, ErrNodeNotFound, ErrBadEdge, ErrNotTree.
// Complexity: O(N + E).
func (g *Graph) Validate() error {
	if len(g.nodes) == 0 {
		return fmt.Errorf("%s: empty graph: %w", methodValidate, ErrNotTree)
	}
	pos := make(map[int]Point, len(g.nodes))
	cells := make(map[Point]int, len(g.nodes))
	for _, n := range g.nodes {
		if _, dup := pos[n.ID]; dup {
			return fmt.Errorf("%s: id=%d: %w", methodValidate, n.ID, ErrDuplicateID)
		}
		if other, dup := cells[n.Pos()]; dup {
			return fmt.Errorf("%s: nodes %d and %d at %v: %w", methodValidate, other, n.ID, n.Pos(), ErrDuplicatePosition)
		}
		pos[n.ID] = n.Pos()
		cells[n.Pos()] = n.ID
	}
	for _, e := range g.edges {
		pu, okU := pos[e.U]
		pv, okV := pos[e.V]
		if !okU || !okV {
			return fmt.Errorf("%s: edge %d-%d: %w", methodValidate, e.U, e.V, ErrNodeNotFound)
		}
		if pv.Sub(pu).Manhattan() != 1 {
			return fmt.Errorf("%s: edge %d-%d spans %v→%v: %w", methodValidate, e.U, e.V, pu, pv, ErrBadEdge)
		}
	}
	if len(g.edges) != len(g.nodes)-1 {
		return fmt.Errorf("%s: %d nodes, %d edges: %w", methodValidate, len(g.nodes), len(g.edges), ErrNotTree)
	}
	if !g.Connected() {
		return fmt.Errorf("%s: disconnected: %w", methodValidate, ErrNotTree)
	}

	return nil
}
