// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// random_edge.go: RandomEdge, the benchmark and fuzz generator.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

// defaultRandomWeight draws RandomEdge weights when no WithWeightFn is set.
var defaultRandomWeight = IntWeightFn(1, 100)

// RandomEdge inserts one weighted hyperedge into g over 1..maxMembers
// members drawn uniformly, with replacement, from g's current vertices.
// Repeated draws collapse, so the domain may be smaller than the draw count
// but is never empty. The weight comes from WithWeightFn, or is an integer
// in [1, 100].
//
// The RNG must be supplied with WithRand (or WithSeed for a single call).
// Only public insertion APIs of g are used.
//
// Errors:
//   - ErrTooFewVertices: maxMembers < 1 or g has no vertices.
//   - ErrNeedRandSource: no RNG configured.
//   - any error of g.AddSurface (e.g. core.ErrDuplicateIndex, id.ErrIndexOutOfBounds).
func RandomEdge[T id.Index, N any, E core.Number](g *core.Graph[T, N, E], maxMembers int, opts ...BuilderOption) (id.EdgeID[T], error) {
	var none id.EdgeID[T]
	if g == nil {
		return none, errors.Wrap(ErrConstructFailed, "nil graph")
	}
	if err := validateMin(MethodRandomEdge, "maxMembers", maxMembers, MinMembers); err != nil {
		return none, err
	}
	cfg := newBuilderConfig(opts...)
	if err := validateRand(MethodRandomEdge, cfg); err != nil {
		return none, err
	}
	vs := g.NodeIDs()
	if err := validateMin(MethodRandomEdge, "order", len(vs), 1); err != nil {
		return none, err
	}

	k := 1 + cfg.rng.Intn(maxMembers)
	members := make([]id.VertexID[T], k)
	for i := range members {
		members[i] = vs[cfg.rng.Intn(len(vs))]
	}
	wfn := cfg.weightFn
	if wfn == nil {
		wfn = defaultRandomWeight
	}

	eid, err := g.AddSurface(E(wfn(cfg.rng)), members...)
	if err != nil {
		return none, errors.Wrap(err, MethodRandomEdge)
	}

	return eid, nil
}
