// Package core provides the tree model of the split/grow puzzle: nodes placed on
// the integer grid, unit-length orthogonal edges, and the four structural
// operations that move between configurations.
//
// A configuration G = (N,E) is always a tree:
//
//   - connected, |E| = |N| - 1, no cycles
//   - no two nodes share a grid cell
//   - every edge joins cells at Manhattan distance exactly 1
//
// Node identities are arena handles issued by the Graph (0, 1, 2, …) and are
// never reused inside one Graph, even after a node is removed. They carry no
// meaning beyond the Graph instance: two graphs are the same configuration iff
// their canonical signatures are equal.
//
// Operations:
//
//	// Forward (mutate the receiver in place; untouched on error)
//	Grow(src, dir)   // new white leaf at src+dir, src flips color
//	Split(u, v)      // v's side moves by v-u, a white node fills the gap, u and v flip
//
//	// Reverse (return a new Graph; receiver is never modified)
//	Ungrow(id)       // drop a white leaf, its neighbor flips
//	Unsplit(b, a)    // drop a white straight-through node, pull a's side back to c
//	Predecessors()   // every Ungrow/Unsplit result, the solver's successor function
//
// Canonicalization:
//
//	Signature()      // translation-normalized "x,y,color" set, used for solution checks
//	StateKey()       // Signature plus normalized edges, used for search deduplication
//
// Rotations and reflections are NOT normalized: a configuration and its
// 90° rotation are different puzzles.
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Snapshots stored in a Puzzle
//	trace are never mutated by this module and may be read from any goroutine.
//
// Errors:
//
//   - ErrNodeNotFound      - an ID does not name a node of the graph.
//   - ErrEdgeNotFound      - no edge joins the two given nodes.
//   - ErrBadDirection      - a grow direction is not an orthogonal unit vector.
//   - ErrOccupied          - a grow target cell already holds a node.
//   - ErrCollision         - a translated side would overlap a static node.
//   - ErrNotApplicable     - a reverse operation's preconditions do not hold.
//   - ErrDuplicateID       - two input nodes share an ID.
//   - ErrDuplicatePosition - two nodes share a grid cell.
//   - ErrBadEdge           - an edge is not an orthogonal unit step.
//   - ErrNotTree           - the graph is empty, disconnected or has |E| ≠ |N|-1.
package core
