package core

import (
	"errors"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates no edge joins the requested endpoints.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadDirection indicates a grow direction that is not an orthogonal unit vector.
	ErrBadDirection = errors.New("core: direction must be an orthogonal unit vector")

	// ErrOccupied indicates the grow target cell already holds a node.
	ErrOccupied = errors.New("core: target cell is occupied")

	// ErrCollision indicates a translated component would overlap a static node.
	ErrCollision = errors.New("core: translation collides with another node")

	// ErrNotApplicable indicates the preconditions of a reverse operation do not hold.
	ErrNotApplicable = errors.New("core: operation not applicable")

	// ErrDuplicateID indicates two nodes share an identity.
	ErrDuplicateID = errors.New("core: duplicate node ID")

	// ErrDuplicatePosition indicates two nodes share a grid cell.
	ErrDuplicatePosition = errors.New("core: duplicate node position")

	// ErrBadEdge indicates an edge whose endpoints are not orthogonally adjacent.
	ErrBadEdge = errors.New("core: edge endpoints are not unit-adjacent")

	// ErrNotTree indicates the graph is empty, disconnected or has the wrong edge count.
	ErrNotTree = errors.New("core: graph is not a tree")
)

// NoNode is the ID used when no node is meant, e.g. "no forbidden node" in Component.
const NoNode = -1

// Color is the binary node color.
type Color int

const (
	// White is the color of every freshly inserted node.
	White Color = 0
	// Black is the flipped color.
	Black Color = 1
)

// Flip returns the opposite color.
func (c Color) Flip() Color { return 1 - c }

// String returns "white" or "black".
func (c Color) String() string {
	if c == White {
		return "white"
	}

	return "black"
}

// Point is an integer grid coordinate or displacement.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Manhattan returns |X|+|Y|.
func (p Point) Manhattan() int { return abs(p.X) + abs(p.Y) }

// Directions lists the four orthogonal unit steps: east, west, south, north.
var Directions = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Node is a single tree node on the grid.
type Node struct {
	// ID is the arena handle of the node inside its Graph.
	ID int `json:"id"`

	// GX, GY are the grid coordinates.
	GX int `json:"gx"`
	GY int `json:"gy"`

	// Color is White (0) or Black (1).
	Color Color `json:"color"`
}

// Pos returns the node's grid cell.
func (n Node) Pos() Point { return Point{n.GX, n.GY} }

// moved returns a copy of n translated by d.
func (n Node) moved(d Point) Node {
	n.GX += d.X
	n.GY += d.Y

	return n
}

// Edge is an unordered pair of node IDs.
// The stored orientation (U,V) is kept only because Split uses it as the
// default cut direction; equality ignores it.
type Edge struct {
	U int `json:"u"`
	V int `json:"v"`
}

// Key returns the endpoints ordered ascending.
func (e Edge) Key() [2]int {
	if e.U <= e.V {
		return [2]int{e.U, e.V}
	}

	return [2]int{e.V, e.U}
}

// Has reports whether id is one of the endpoints.
func (e Edge) Has(id int) bool { return e.U == id || e.V == id }

// Other returns the endpoint opposite to id, or NoNode if id is not an endpoint.
func (e Edge) Other(id int) int {
	switch id {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return NoNode
	}
}

// NodeSet is a set of node IDs.
type NodeSet map[int]struct{}

// Has reports membership.
func (s NodeSet) Has(id int) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of members.
func (s NodeSet) Len() int { return len(s) }

// IDs returns the members sorted ascending.
func (s NodeSet) IDs() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
