// File: ops.go
// Role: forward puzzle operations (Grow, Split). Both mutate the receiver and
// leave it untouched when they return an error.

package core

import (
	"fmt"
	"slices"
)

const (
	methodGrow  = "Grow"
	methodSplit = "Split"
)

// Grow adds a new white leaf at src+dir joined to src, and flips src's color.
// Returns the new node's ID.
//
// Errors: ErrNodeNotFound, ErrBadDirection, ErrOccupied.
// Complexity: O(N).
func (g *Graph) Grow(src int, dir Point) (int, error) {
	i := g.indexOf(src)
	if i < 0 {
		return NoNode, fmt.Errorf("%s: src=%d: %w", methodGrow, src, ErrNodeNotFound)
	}
	if dir.Manhattan() != 1 {
		return NoNode, fmt.Errorf("%s: dir=%v: %w", methodGrow, dir, ErrBadDirection)
	}
	target := g.nodes[i].Pos().Add(dir)
	if g.Occupied(target) {
		return NoNode, fmt.Errorf("%s: cell %v: %w", methodGrow, target, ErrOccupied)
	}

	id := g.nextID
	g.nextID++
	g.nodes = append(g.nodes, Node{ID: id, GX: target.X, GY: target.Y, Color: White})
	g.edges = append(g.edges, Edge{U: src, V: id})
	g.nodes[i].Color = g.nodes[i].Color.Flip()

	return id, nil
}

// Split cuts the edge u–v, moves v's side of the tree by d = v-u, inserts a
// new white node in the cell v vacated (adjacent to u), joins u–new–v and
// flips the colors of u and v. Returns the new node's ID.
//
// The argument order chooses the moving side: Split(u, v) moves v's side,
// Split(v, u) moves u's side.
//
// Errors: ErrEdgeNotFound, ErrCollision.
// Complexity: O(N + E).
func (g *Graph) Split(u, v int) (int, error) {
	ei := g.edgeIndex(u, v)
	if ei < 0 {
		return NoNode, fmt.Errorf("%s: %d-%d: %w", methodSplit, u, v, ErrEdgeNotFound)
	}
	un, _ := g.Node(u)
	vn, _ := g.Node(v)
	d := vn.Pos().Sub(un.Pos())

	side := g.Component(v, u)
	if g.collides(side, d, NoNode) {
		return NoNode, fmt.Errorf("%s: %d-%d by %v: %w", methodSplit, u, v, d, ErrCollision)
	}

	g.translate(side, d)
	g.edges = slices.Delete(g.edges, ei, ei+1)

	// v now sits at old(v)+d, so old(v) = new(v)-d is the free cell next to u.
	ins := vn.Pos()
	id := g.nextID
	g.nextID++
	g.nodes = append(g.nodes, Node{ID: id, GX: ins.X, GY: ins.Y, Color: White})
	g.edges = append(g.edges, Edge{U: u, V: id}, Edge{U: id, V: v})
	g.flip(u)
	g.flip(v)

	return id, nil
}
