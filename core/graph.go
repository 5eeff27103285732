// File: graph.go
// Role: Graph storage, construction, cloning and read-only queries.

package core

import (
	"fmt"
	"slices"
)

// Graph is a tree configuration: an ordered node arena plus an edge list.
//
// Node order is insertion order and is preserved by every operation; it has no
// semantic meaning but keeps traversals and tests deterministic.
type Graph struct {
	nodes  []Node
	edges  []Edge
	nextID int
}

// NewGraph returns the puzzle start: a single white node with ID 0 at (0,0).
func NewGraph() *Graph {
	return &Graph{
		nodes:  []Node{{ID: 0, GX: 0, GY: 0, Color: White}},
		nextID: 1,
	}
}

// NewGraphFrom builds a Graph from caller-owned nodes and edges. Both slices are copied.
//
// Node IDs must be unique and every edge endpoint must exist. Tree invariants
// are NOT checked here; call Validate for that.
// Returns ErrDuplicateID or ErrNodeNotFound.
// Complexity: O(N + E).
func NewGraphFrom(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: slices.Clone(nodes),
		edges: slices.Clone(edges),
	}
	ids := make(NodeSet, len(nodes))
	for _, n := range nodes {
		if ids.Has(n.ID) {
			return nil, fmt.Errorf("NewGraphFrom: id=%d: %w", n.ID, ErrDuplicateID)
		}
		ids[n.ID] = struct{}{}
		if n.ID >= g.nextID {
			g.nextID = n.ID + 1
		}
	}
	for _, e := range edges {
		if !ids.Has(e.U) || !ids.Has(e.V) {
			return nil, fmt.Errorf("NewGraphFrom: edge %d-%d: %w", e.U, e.V, ErrNodeNotFound)
		}
	}

	return g, nil
}

// Renumber returns a copy of nodes with IDs replaced by their slice index.
// Used for caller input where identities are absent or meaningless.
func Renumber(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		n.ID = i
		out[i] = n
	}

	return out
}

// Clone returns an independent deep copy, including the ID counter.
// Complexity: O(N + E).
func (g *Graph) Clone() *Graph {
	return &Graph{
		nodes:  slices.Clone(g.nodes),
		edges:  slices.Clone(g.edges),
		nextID: g.nextID,
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int { return len(g.edges) }

// NodeAt returns the i-th node in insertion order. Panics if i is out of range.
func (g *Graph) NodeAt(i int) Node { return g.nodes[i] }

// EdgeAt returns the i-th edge. Panics if i is out of range.
func (g *Graph) EdgeAt(i int) Edge { return g.edges[i] }

// Nodes returns a copy of the node list.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns a copy of the edge list.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Node looks a node up by ID.
func (g *Graph) Node(id int) (Node, bool) {
	i := g.indexOf(id)
	if i < 0 {
		return Node{}, false
	}

	return g.nodes[i], true
}

// At returns the ID of the node occupying p.
func (g *Graph) At(p Point) (int, bool) {
	for _, n := range g.nodes {
		if n.GX == p.X && n.GY == p.Y {
			return n.ID, true
		}
	}

	return NoNode, false
}

// Occupied reports whether any node sits on p.
func (g *Graph) Occupied(p Point) bool {
	_, ok := g.At(p)

	return ok
}

// HasEdge reports whether an edge joins u and v (either orientation).
func (g *Graph) HasEdge(u, v int) bool { return g.edgeIndex(u, v) >= 0 }

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) int {
	d := 0
	for _, e := range g.edges {
		if e.Has(id) {
			d++
		}
	}

	return d
}

// Neighbors returns the IDs adjacent to id in edge order.
func (g *Graph) Neighbors(id int) []int {
	var out []int
	for _, e := range g.edges {
		if o := e.Other(id); o != NoNode {
			out = append(out, o)
		}
	}

	return out
}

// WhiteCount returns the number of white nodes.
func (g *Graph) WhiteCount() int {
	c := 0
	for _, n := range g.nodes {
		if n.Color == White {
			c++
		}
	}

	return c
}

// indexOf returns the slice index of node id, or -1.
func (g *Graph) indexOf(id int) int {
	for i, n := range g.nodes {
		if n.ID == id {
			return i
		}
	}

	return -1
}

// edgeIndex returns the slice index of the edge joining u and v, or -1.
func (g *Graph) edgeIndex(u, v int) int {
	want := Edge{U: u, V: v}.Key()
	for i, e := range g.edges {
		if e.Key() == want {
			return i
		}
	}

	return -1
}

// flip toggles the color of node id if present.
func (g *Graph) flip(id int) {
	if i := g.indexOf(id); i >= 0 {
		g.nodes[i].Color = g.nodes[i].Color.Flip()
	}
}

// translate moves every node in set by d.
func (g *Graph) translate(set NodeSet, d Point) {
	for i, n := range g.nodes {
		if set.Has(n.ID) {
			g.nodes[i] = n.moved(d)
		}
	}
}

// removeNode drops node id and every incident edge.
func (g *Graph) removeNode(id int) {
	g.nodes = slices.DeleteFunc(g.nodes, func(n Node) bool { return n.ID == id })
	g.edges = slices.DeleteFunc(g.edges, func(e Edge) bool { return e.Has(id) })
}

// collides reports whether translating set by d would land any member on a
// cell held by a node outside set. The node ignore (if any) counts as vacated.
// Complexity: O(N).
func (g *Graph) collides(set NodeSet, d Point, ignore int) bool {
	static := make(map[Point]struct{}, len(g.nodes))
	for _, n := range g.nodes {
		if set.Has(n.ID) || n.ID == ignore {
			continue
		}
		static[n.Pos()] = struct{}{}
	}
	for _, n := range g.nodes {
		if !set.Has(n.ID) {
			continue
		}
		if _, hit := static[n.Pos().Add(d)]; hit {
			return true
		}
	}

	return false
}
