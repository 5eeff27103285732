// Package solver reconstructs a construction trace for a bare set of colored
// grid nodes, or proves within its search model that none exists.
//
// The input carries positions and colors only; the tree that joined the nodes
// is unknown. Solve therefore enumerates every spanning tree of the
// unit-adjacency graph over the positions (spantree.Enumerate) and, per tree,
// runs a breadth-first search backwards through Ungrow and Unsplit until it
// reaches a single white node. The first tree whose search succeeds wins and
// its search path, read from the goal back to the input, is the forward trace.
//
// Search model:
//
//   - state: a core.Graph; visited states are deduplicated by Graph.StateKey,
//     so translated copies of one configuration are explored once;
//   - successors: Graph.Predecessors (all ungrows, then all unsplits);
//   - goal: exactly one node and it is white;
//   - queue: a FIFO linked-list queue of search states, each with a parent
//     pointer for path reconstruction.
//
// Budgets:
//
//	MaxIterations (default 100000) caps expansions per tree. A tree that hits
//	the cap is abandoned and the run becomes inconclusive. MaxTotalIterations
//	(0 = unlimited) caps expansions across all trees. WithContext adds
//	cancellation and deadlines.
//
// Errors:
//
//   - ErrEmptyInput: no nodes.
//   - core.ErrDuplicatePosition: two nodes share a cell.
//   - ErrNoSolution alone: every tree was searched to exhaustion.
//   - ErrNoSolution and ErrInconclusive together: a budget cut the search short.
//   - ErrOptionViolation: a meaningless option value.
//   - ctx.Err(): the context was done.
//
// Complexity:
//
//	Exponential in the worst case: the number of spanning trees and the size
//	of each reverse state space both grow exponentially with N. Each
//	expansion costs O(N·(N + E)) for predecessor generation.
package solver
