// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits {i, i+1 mod n} in increasing i; on directed graphs the ring is
//     oriented 0 → 1 → … → n-1 → 0.
//
// Complexity: O(n) vertices + O(n) hyperedges.

package builder

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		labels, err := addVertices(s, cfg, MethodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = emit(s, cfg, MethodCycle, labels[i], labels[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
