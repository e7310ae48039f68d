// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed label "Center", then leaves cfg.idFn(1..n-1).
//   - Emits spokes {Center, leaf} by increasing leaf index. On directed
//     graphs each spoke is mirrored (leaf → Center) right after it.
//
// Complexity: O(n) vertices + O(n-1) hyperedges (2n-2 when directed).

package builder

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := s.AddVertex(CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := s.AddVertex(leaf); err != nil {
				return err
			}
			if err := emit(s, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
			if s.Directed() {
				if err := emit(s, cfg, MethodStar, leaf, CenterVertexID); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
