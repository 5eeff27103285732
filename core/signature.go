package core

import (
	"slices"
	"strconv"
	"strings"
)

// Signature is the canonical, translation-normalized form of a configuration:
// one "x,y,color" entry per node, coordinates shifted so that the minimum x
// and minimum y are both zero, sorted ascending. Node identities and insertion
// order do not contribute.
type Signature []string

// Equal reports set equality of two signatures.
func (s Signature) Equal(o Signature) bool { return slices.Equal(s, o) }

// Key joins the signature into a single map-friendly string.
func (s Signature) Key() string { return strings.Join(s, "|") }

// Signature computes the canonical signature of g.
// Complexity: O(N log N).
func (g *Graph) Signature() Signature {
	if len(g.nodes) == 0 {
		return Signature{}
	}
	origin := g.origin()
	out := make(Signature, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, cellKey(n.Pos().Sub(origin), n.Color))
	}
	slices.Sort(out)

	return out
}

// StateKey extends Signature with the edge set: each edge is rendered as its
// two normalized endpoint cells (smaller cell first), so two states are equal
// iff they hold the same colored cells joined the same way, regardless of
// where they sit on the plane and of the IDs involved.
// Complexity: O((N + E) log(N + E)).
func (g *Graph) StateKey() string {
	sig := g.Signature()
	if len(g.nodes) == 0 {
		return ""
	}
	origin := g.origin()
	pos := make(map[int]Point, len(g.nodes))
	for _, n := range g.nodes {
		pos[n.ID] = n.Pos().Sub(origin)
	}
	edges := make([]string, 0, len(g.edges))
	for _, e := range g.edges {
		a, b := pos[e.U], pos[e.V]
		if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
			a, b = b, a
		}
		edges = append(edges, pointKey(a)+"-"+pointKey(b))
	}
	slices.Sort(edges)

	var sb strings.Builder
	sb.WriteString("N:")
	sb.WriteString(sig.Key())
	sb.WriteString("|E:")
	sb.WriteString(strings.Join(edges, "|"))

	return sb.String()
}

// Equivalent reports whether a and b are the same configuration, i.e. their
// signatures are set-equal. Edges are not compared: the puzzle is won as soon
// as the colored cells match.
func Equivalent(a, b *Graph) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Signature().Equal(b.Signature())
}

// origin returns (min x, min y) over all nodes. g must be non-empty.
func (g *Graph) origin() Point {
	o := g.nodes[0].Pos()
	for _, n := range g.nodes[1:] {
		o.X = min(o.X, n.GX)
		o.Y = min(o.Y, n.GY)
	}

	return o
}

func pointKey(p Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

func cellKey(p Point, c Color) string {
	return pointKey(p) + "," + strconv.Itoa(int(c))
}
