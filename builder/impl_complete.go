// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_complete.go - implementation of Complete(n) and CompleteUniform(n, k).
//
// Contract:
//   - Complete(n): n ≥ 1; every pair {i, j}, i < j, in lexicographic order;
//     mirrored j → i on directed graphs.
//   - CompleteUniform(n, k): 1 ≤ k ≤ n; every k-subset in lexicographic
//     order (the complete k-uniform hypergraph). Not mirrored.
//
// Complexity: O(n) vertices + O(C(n,k)) hyperedges.

package builder

import (
	"github.com/pkg/errors"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, 1); err != nil {
			return err
		}
		labels, err := addVertices(s, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = emit(s, cfg, MethodComplete, labels[i], labels[j]); err != nil {
					return err
				}
				if s.Directed() {
					if err = emit(s, cfg, MethodComplete, labels[j], labels[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// CompleteUniform returns a Constructor that emits every k-subset of n
// vertices as a hyperedge.
func CompleteUniform(n, k int) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "k", k, MinMembers); err != nil {
			return err
		}
		if k > n {
			return errors.Wrapf(ErrBadSize, "%s: k=%d > n=%d", MethodComplete, k, n)
		}
		labels, err := addVertices(s, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		members := make([]string, k)
		for {
			for i, x := range idx {
				members[i] = labels[x]
			}
			if err = emit(s, cfg, MethodComplete, members...); err != nil {
				return err
			}
			// advance to the next combination
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return nil
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
