// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left labels "{leftPrefix}{i}", right labels "{rightPrefix}{j}".
//   • Emits every cross-pair {L_i, R_j}, i asc then j asc; L_i is the source
//     on directed graphs and R_j → L_i follows as the mirror.
//
// Complexity: O(n1 + n2) vertices + O(n1·n2) hyperedges.

package builder

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = prefixed(cfg.leftPrefix, i)
			if err := s.AddVertex(left[i]); err != nil {
				return err
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = prefixed(cfg.rightPrefix, j)
			if err := s.AddVertex(right[j]); err != nil {
				return err
			}
		}
		for _, l := range left {
			for _, r := range right {
				if err := emit(s, cfg, MethodCompleteBipartite, l, r); err != nil {
					return err
				}
				if s.Directed() {
					if err := emit(s, cfg, MethodCompleteBipartite, r, l); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
