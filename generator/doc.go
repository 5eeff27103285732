// SPDX-License-Identifier: MIT
// Package: splitgrow/generator
//
// Package generator builds random split/grow puzzles by applying random
// forward operations to a single white node and recording every intermediate
// configuration.
//
// What:
//
//   - Generate(target, opts...) grows a tree to target nodes and returns a
//     *core.Puzzle: the final graph plus its construction trace.
//   - Each step picks Grow with probability p (default 0.6), else Split.
//     Grow uses a uniformly random node and direction; Split uses a uniformly
//     random edge in its stored orientation.
//   - Failed attempts (occupied cell, collision, no edge to split) leave the
//     graph untouched and count towards a consecutive-failure budget.
//
// Why:
//
//	A puzzle is only interesting if a construction for it is known to exist.
//	Recording the trace makes every generated puzzle provably solvable and
//	gives the solver a reference answer.
//
// Determinism:
//
//	Without WithSeed or WithRand the RNG is seeded from the clock. With a
//	fixed seed, Generate returns the same trace on every run.
//
// Stall:
//
//	When maxAttempts consecutive attempts fail, Generate returns the partial
//	puzzle it reached. This is not an error; the reached size is logged at
//	debug level through common.Logger.
//
// Errors:
//
//   - ErrTooFewNodes: target < 1.
//   - ctx.Err() when the context passed via WithContext is done.
//
// Complexity:
//
//	Each attempt is O(N + E) (component walk and collision check on Split);
//	snapshots cost O(N) each, so a run of S successful steps is O(S·N) memory.
package generator
