// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertices use the fixed coordinate label "r,c" in row-major order.
//   - For each cell, emits {cell, right} then {cell, below} when present;
//     on directed graphs each is mirrored right after it.
//
// Complexity: O(rows·cols) vertices and hyperedges.

package builder

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := s.AddVertex(gridLabel(r, c)); err != nil {
					return err
				}
			}
		}

		link := func(u, v string) error {
			if err := emit(s, cfg, MethodGrid, u, v); err != nil {
				return err
			}
			if s.Directed() {
				return emit(s, cfg, MethodGrid, v, u)
			}

			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridLabel(r, c)
				if c+1 < cols {
					if err := link(u, gridLabel(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, gridLabel(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
