package spantree

import "slices"

// unionFind is a disjoint-set forest over dense indices 0..n-1 with path
// compression and union by rank. Values are copied on include, so each
// recursion level owns its own forest.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) unionFind {
	uf := unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find walks up to the root, halving the path as it goes.
func (uf unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v; reports false if they were already joined.
func (uf unionFind) union(u, v int) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	// attach smaller-rank tree under larger-rank root
	if uf.rank[ru] < uf.rank[rv] {
		uf.parent[ru] = rv
	} else {
		uf.parent[rv] = ru
		if uf.rank[ru] == uf.rank[rv] {
			uf.rank[ru]++
		}
	}

	return true
}

func (uf unionFind) clone() unionFind {
	return unionFind{parent: slices.Clone(uf.parent), rank: slices.Clone(uf.rank)}
}
