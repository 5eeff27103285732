package core

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadTrace indicates a construction trace that does not lead from a single
// node to the final configuration one operation at a time.
var ErrBadTrace = errors.New("core: malformed construction trace")

const methodPuzzleValidate = "Puzzle.Validate"

// Puzzle is the artifact produced by both the generator and the solver: the
// final configuration plus its construction trace.
//
// Trace[0] holds a single node, Trace[len-1] is equivalent to Graph, and each
// consecutive pair differs by exactly one grow or split (one more node).
// Trace elements are snapshots; callers must not mutate them.
type Puzzle struct {
	Graph *Graph   `json:"graph"`
	Trace []*Graph `json:"trace"`
}

// Steps returns the number of operations in the trace.
func (p *Puzzle) Steps() int {
	if len(p.Trace) == 0 {
		return 0
	}

	return len(p.Trace) - 1
}

// Validate checks the trace shape, every snapshot's tree invariants, and that
// each snapshot is one reverse operation away from the next.
// Errors: ErrBadTrace or any Graph.Validate error, wrapped with the step index.
// Complexity: O(S·N·(N + E)) for S steps.
func (p *Puzzle) Validate() error {
	if p.Graph == nil || len(p.Trace) == 0 {
		return fmt.Errorf("%s: empty puzzle: %w", methodPuzzleValidate, ErrBadTrace)
	}
	if err := p.Graph.Validate(); err != nil {
		return fmt.Errorf("%s: final graph: %w", methodPuzzleValidate, err)
	}
	if p.Trace[0].Len() != 1 {
		return fmt.Errorf("%s: trace starts with %d nodes: %w", methodPuzzleValidate, p.Trace[0].Len(), ErrBadTrace)
	}
	if p.Trace[0].WhiteCount() != 1 {
		return fmt.Errorf("%s: trace does not start at a white node: %w", methodPuzzleValidate, ErrBadTrace)
	}
	for i, snap := range p.Trace {
		if err := snap.Validate(); err != nil {
			return fmt.Errorf("%s: step %d: %w", methodPuzzleValidate, i, err)
		}
		if i > 0 && snap.Len() != p.Trace[i-1].Len()+1 {
			return fmt.Errorf("%s: step %d grows %d→%d nodes: %w",
				methodPuzzleValidate, i, p.Trace[i-1].Len(), snap.Len(), ErrBadTrace)
		}
		if i > 0 && !derives(p.Trace[i-1], snap) {
			return fmt.Errorf("%s: step %d is not a single grow or split: %w", methodPuzzleValidate, i, ErrBadTrace)
		}
	}
	if !Equivalent(p.Trace[len(p.Trace)-1], p.Graph) {
		return fmt.Errorf("%s: trace does not end at the final graph: %w", methodPuzzleValidate, ErrBadTrace)
	}

	return nil
}

// derives reports whether next is prev plus one forward operation, up to
// translation and node IDs.
func derives(prev, next *Graph) bool {
	key := prev.StateKey()
	for _, cand := range next.Predecessors() {
		if cand.StateKey() == key {
			return true
		}
	}

	return false
}

// graphJSON is the wire shape of a Graph.
type graphJSON struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// MarshalJSON encodes the graph as {"nodes":[...],"edges":[...]}.
func (g *Graph) MarshalJSON() ([]byte, error) {
	edges := g.edges
	if edges == nil {
		edges = []Edge{}
	}

	return json.Marshal(graphJSON{Nodes: g.nodes, Edges: edges})
}

// UnmarshalJSON decodes the shape written by MarshalJSON. IDs must be unique
// and edges must reference existing nodes.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var raw graphJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := NewGraphFrom(raw.Nodes, raw.Edges)
	if err != nil {
		return err
	}
	*g = *built

	return nil
}
