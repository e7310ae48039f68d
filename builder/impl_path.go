// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits 2-member hyperedges {i-1, i} for i=1..n-1; on directed graphs
//     i-1 is the source.
//
// Complexity: O(n) vertices + O(n-1) hyperedges.

package builder

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		labels, err := addVertices(s, cfg, MethodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = emit(s, cfg, MethodPath, labels[i-1], labels[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
