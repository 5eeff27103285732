// File: reverse.go
// Role: inverse operations used by reverse search. Every method here returns a
// fresh Graph and never modifies the receiver, so search states can share no
// storage.

package core

import "fmt"

const (
	methodUngrow  = "Ungrow"
	methodUnsplit = "Unsplit"
)

// Ungrow removes the white leaf id and its edge and flips the former neighbor.
// It is the exact inverse of Grow.
//
// Errors: ErrNodeNotFound; ErrNotApplicable if id is black or its degree is not 1.
// Complexity: O(N + E).
func (g *Graph) Ungrow(id int) (*Graph, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, fmt.Errorf("%s: id=%d: %w", methodUngrow, id, ErrNodeNotFound)
	}
	nbrs := g.Neighbors(id)
	if n.Color != White || len(nbrs) != 1 {
		return nil, fmt.Errorf("%s: id=%d color=%s degree=%d: %w",
			methodUngrow, id, n.Color, len(nbrs), ErrNotApplicable)
	}

	next := g.Clone()
	next.removeNode(id)
	next.flip(nbrs[0])

	return next, nil
}

// Unsplit removes the white node b, whose two neighbors lie on a straight line
// through it, and reconnects them directly. a names the neighbor whose side
// moves; c is the other one. a's side is translated by c-b, which brings a
// into b's cell and undoes the displacement of the Split that created b.
// The colors of a and c flip. It is the exact inverse of Split.
//
// Errors: ErrNodeNotFound; ErrNotApplicable if b is black, its degree is not 2,
// its neighbors are not colinear through it, or a is not one of them;
// ErrCollision if a's side would overlap a static node (b's cell counts as free).
// Complexity: O(N + E).
func (g *Graph) Unsplit(b, a int) (*Graph, error) {
	bn, ok := g.Node(b)
	if !ok {
		return nil, fmt.Errorf("%s: b=%d: %w", methodUnsplit, b, ErrNodeNotFound)
	}
	nbrs := g.Neighbors(b)
	if bn.Color != White || len(nbrs) != 2 {
		return nil, fmt.Errorf("%s: b=%d color=%s degree=%d: %w",
			methodUnsplit, b, bn.Color, len(nbrs), ErrNotApplicable)
	}
	var c int
	switch a {
	case nbrs[0]:
		c = nbrs[1]
	case nbrs[1]:
		c = nbrs[0]
	default:
		return nil, fmt.Errorf("%s: a=%d is not adjacent to b=%d: %w", methodUnsplit, a, b, ErrNotApplicable)
	}
	an, _ := g.Node(a)
	cn, _ := g.Node(c)
	if an.Pos().Add(cn.Pos()) != (Point{2 * bn.GX, 2 * bn.GY}) {
		return nil, fmt.Errorf("%s: b=%d is not straight-through: %w", methodUnsplit, b, ErrNotApplicable)
	}

	side := g.Component(a, b)
	shift := cn.Pos().Sub(bn.Pos())
	if g.collides(side, shift, b) {
		return nil, fmt.Errorf("%s: b=%d a=%d by %v: %w", methodUnsplit, b, a, shift, ErrCollision)
	}

	next := g.Clone()
	next.translate(side, shift)
	next.removeNode(b)
	next.edges = append(next.edges, Edge{U: a, V: c})
	next.flip(a)
	next.flip(c)

	return next, nil
}

// Predecessors returns every configuration one reverse step away from g: all
// Ungrow results first, then all Unsplit results (both moving sides), in node
// order. Inapplicable and colliding candidates are skipped silently.
// Complexity: O(N·(N + E)).
func (g *Graph) Predecessors() []*Graph {
	var out []*Graph
	for _, n := range g.nodes {
		if n.Color != White || g.Degree(n.ID) != 1 {
			continue
		}
		if prev, err := g.Ungrow(n.ID); err == nil {
			out = append(out, prev)
		}
	}
	for _, n := range g.nodes {
		if n.Color != White {
			continue
		}
		nbrs := g.Neighbors(n.ID)
		if len(nbrs) != 2 {
			continue
		}
		for _, a := range nbrs {
			if prev, err := g.Unsplit(n.ID, a); err == nil {
				out = append(out, prev)
			}
		}
	}

	return out
}
