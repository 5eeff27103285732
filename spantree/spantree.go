package spantree

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/splitgrow/core"
)

// Candidates returns every unit-adjacency edge between the given nodes, each
// pair once, oriented from the west/north node to the east/south node, in node
// order. Edge endpoints are node IDs.
// Complexity: O(N).
func Candidates(nodes []core.Node) []core.Edge {
	at := make(map[core.Point]int, len(nodes))
	for _, n := range nodes {
		at[n.Pos()] = n.ID
	}
	var out []core.Edge
	for _, n := range nodes {
		for _, d := range [2]core.Point{{X: 1}, {Y: 1}} {
			if other, ok := at[n.Pos().Add(d)]; ok {
				out = append(out, core.Edge{U: n.ID, V: other})
			}
		}
	}

	return out
}

// Enumerate returns a lazy sequence of all distinct spanning trees over nodes
// using Candidates as the only admissible edges. Each yielded slice is freshly
// allocated and owned by the consumer. Node IDs must be unique.
//
// The sequence is restartable: ranging over it again re-runs the enumeration
// from scratch.
func Enumerate(nodes []core.Node) iter.Seq[[]core.Edge] {
	return func(yield func([]core.Edge) bool) {
		n := len(nodes)
		switch n {
		case 0:
			return
		case 1:
			yield([]core.Edge{})
			return
		}

		dense := make(map[int]int, n)
		for i, nd := range nodes {
			dense[nd.ID] = i
		}
		cands := Candidates(nodes)
		pairs := make([][2]int, len(cands))
		for i, c := range cands {
			pairs[i] = [2]int{dense[c.U], dense[c.V]}
		}

		e := &enumerator{
			n:      n,
			cands:  cands,
			pairs:  pairs,
			chosen: make([]int, 0, n-1),
			yield:  yield,
		}
		root := newUnionFind(n)
		if !e.connected(root, 0) {
			return
		}
		e.walk(0, root)
	}
}

// Count drains Enumerate and returns the number of spanning trees.
func Count(nodes []core.Node) int {
	c := 0
	for range Enumerate(nodes) {
		c++
	}

	return c
}

// EdgeSetKey renders an unordered edge set as a canonical string: endpoint
// pairs ordered ascending, pairs sorted.
func EdgeSetKey(edges []core.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		k := e.Key()
		parts[i] = strconv.Itoa(k[0]) + "-" + strconv.Itoa(k[1])
	}
	slices.Sort(parts)

	return strings.Join(parts, "|")
}

// enumerator carries the recursion state of Enumerate.
type enumerator struct {
	n      int
	cands  []core.Edge
	pairs  [][2]int // cands in dense indices
	chosen []int    // indices into cands
	yield  func([]core.Edge) bool
}

// walk decides edge k given the forest uf of chosen edges.
// Returns false once the consumer has stopped.
func (e *enumerator) walk(k int, uf unionFind) bool {
	if len(e.chosen) == e.n-1 {
		tree := make([]core.Edge, len(e.chosen))
		for i, c := range e.chosen {
			tree[i] = e.cands[c]
		}
		return e.yield(tree)
	}
	if k == len(e.cands) {
		return true
	}

	a, b := e.pairs[k][0], e.pairs[k][1]
	if uf.find(a) != uf.find(b) {
		next := uf.clone()
		next.union(a, b)
		e.chosen = append(e.chosen, k)
		ok := e.walk(k+1, next)
		e.chosen = e.chosen[:len(e.chosen)-1]
		if !ok {
			return false
		}
	}

	if e.connected(uf, k+1) {
		return e.walk(k+1, uf)
	}

	return true
}

// connected reports whether the chosen forest plus candidates from..end spans
// every node.
func (e *enumerator) connected(uf unionFind, from int) bool {
	c := uf.clone()
	for _, p := range e.pairs[from:] {
		c.union(p[0], p[1])
	}
	r := c.find(0)
	for i := 1; i < e.n; i++ {
		if c.find(i) != r {
			return false
		}
	}

	return true
}
