// SPDX-License-Identifier: MIT
// Package: splitgrow/generator
//
// errors.go - sentinel errors for the generator package.
//
// Callers branch with errors.Is; implementations add method context with %w.

package generator

import "errors"

// ErrTooFewNodes indicates a target size below one node.
var ErrTooFewNodes = errors.New("generator: target must be at least 1 node")

// MethodGenerate prefixes errors returned by Generate.
const MethodGenerate = "Generate"
