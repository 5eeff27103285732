// Package splitgrow generates and solves split/grow puzzles: trees of
// black-and-white nodes on a square grid, built from a single white node by
// two operations.
//
// 🚀 The two operations
//
//	Grow(n, d)  - add a white leaf next to n in direction d; n flips color.
//	Split(u, v) - cut edge u-v, push v's side one cell away, insert a white
//	              node into the gap; u and v flip color.
//
// Given only the final positions and colors, the puzzle asks for a sequence
// of operations that produces them.
//
// ✨ What is inside
//
//   - Generator - random forward construction with a recorded trace
//   - Solver    - spanning-tree enumeration plus reverse breadth-first search
//   - Catalog   - deduplicated puzzle storage keyed by canonical signature
//   - CLI       - generate, solve, verify and browse puzzles
//
// Under the hood:
//
//	core/      - Graph, Node, Edge; forward and reverse operations; signatures
//	spantree/  - lazy enumeration of every spanning tree of the grid adjacency
//	generator/ - Generate with functional options
//	solver/    - Solve with iteration budgets, hooks and cancellation
//	catalog/   - badger-backed puzzle store
//	config/    - YAML configuration
//	common/    - context-scoped logging
//	cmd/       - the splitgrow command
//
// Quick ASCII example (o white, # black):
//
//	o      grow east      #-o      split       o-o-#
//
// is a complete two-step construction of the three-node line on the right.
//
//	go install github.com/katalvlaran/splitgrow/cmd/splitgrow@latest
package splitgrow
