// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_sunflower.go - implementation of Sunflower(petals, size) constructor.
//
// Contract:
//   - petals ≥ 1 and size ≥ 1 (else ErrTooFewVertices).
//   - Adds the kernel "Center" and petals·size petal vertices cfg.idFn(0..).
//   - Emits one hyperedge per petal: {Center, p_0, …, p_size-1}. The kernel
//     comes first, so on directed graphs it is every petal's source.
//
// The result is the hyperedge analogue of a star: every pair of petals
// intersects exactly in the kernel.
//
// Complexity: O(petals·size) vertices and member slots.

package builder

// Sunflower returns a Constructor that builds a sunflower hypergraph.
func Sunflower(petals, size int) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if err := validateMin(MethodSunflower, "petals", petals, 1); err != nil {
			return err
		}
		if err := validateMin(MethodSunflower, "size", size, MinMembers); err != nil {
			return err
		}
		if err := s.AddVertex(CenterVertexID); err != nil {
			return err
		}
		labels, err := addVertices(s, cfg, MethodSunflower, petals*size)
		if err != nil {
			return err
		}
		for p := 0; p < petals; p++ {
			members := append([]string{CenterVertexID}, labels[p*size:(p+1)*size]...)
			if err = emit(s, cfg, MethodSunflower, members...); err != nil {
				return err
			}
		}

		return nil
	}
}
