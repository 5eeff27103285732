// Package spantree enumerates every spanning tree of the unit-adjacency graph
// over a fixed set of grid nodes.
//
// What:
//
//   - Candidates lists every pair of nodes at Manhattan distance 1: the only
//     edges a puzzle tree may use.
//   - Enumerate lazily yields each distinct spanning tree (edge set) exactly once.
//   - Count drains Enumerate; EdgeSetKey renders an unordered edge-set signature.
//
// Why:
//
//	The solver only knows node positions and colors; the tree topology that
//	joined them is lost. Each spanning tree is a candidate topology to search.
//
// How:
//
//	Binary include/exclude recursion over the candidate edge list:
//	  - include edge k only if it joins two different union-find sets (no cycle);
//	  - exclude edge k only if the chosen edges plus edges k+1.. still connect
//	    every node.
//	Every leaf of the recursion is therefore a spanning tree and no tree is
//	produced twice, so the sequence needs no deduplication.
//
// Complexity:
//
//   - Candidates: O(N) with a position index.
//   - Enumerate:  O(T · E · α(N)) for T trees. T grows exponentially on dense
//     blocks (a 3x3 block already has 192 trees), which is why the sequence is
//     lazy: consumers stop pulling as soon as they are satisfied.
//
// Edge cases:
//
//   - no nodes         → no trees
//   - one node         → exactly one tree, with no edges
//   - positions not adjacency-connected → no trees
package spantree
