// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with errors.Wrapf.
//   • Constructors MUST NOT panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"github.com/pkg/errors"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols,
// members, ...) is smaller than the allowed minimum for the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed (nil graph
// or nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownLabel indicates a hyperedge referenced a label that no
// constructor added.
var ErrUnknownLabel = errors.New("builder: unknown vertex label")

// ErrBadSize indicates a size that cannot be satisfied, such as hyperedges
// wider than the vertex count.
var ErrBadSize = errors.New("builder: invalid size")
