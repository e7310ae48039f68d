// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_random_uniform.go: implementation of RandomUniform(n, m, k).
//
// Contract:
//   - n ≥ 1, m ≥ 0, 1 ≤ k ≤ n (else ErrTooFewVertices / ErrBadSize).
//   - Requires cfg.rng (else ErrNeedRandSource).
//   - Emits m hyperedges of k distinct members each; members of one
//     hyperedge are drawn by a partial Fisher–Yates shuffle and emitted in
//     draw order, so on directed graphs the first draw is the source.
//
// Complexity: O(n + m·k) time, O(n) extra space.
// Determinism: identical for a fixed seed and call order.

package builder

import (
	"github.com/pkg/errors"
)

// RandomUniform returns a Constructor that builds a random k-uniform
// hypergraph with n vertices and m hyperedges.
func RandomUniform(n, m, k int) Constructor {
	return func(s Sink, cfg builderConfig) error {
		if err := validateMin(MethodRandomUniform, "n", n, 1); err != nil {
			return err
		}
		if err := validateMin(MethodRandomUniform, "m", m, 0); err != nil {
			return err
		}
		if err := validateMin(MethodRandomUniform, "k", k, MinMembers); err != nil {
			return err
		}
		if k > n {
			return errors.Wrapf(ErrBadSize, "%s: k=%d > n=%d", MethodRandomUniform, k, n)
		}
		if err := validateRand(MethodRandomUniform, cfg); err != nil {
			return err
		}
		labels, err := addVertices(s, cfg, MethodRandomUniform, n)
		if err != nil {
			return err
		}

		pool := make([]int, n)
		for i := range pool {
			pool[i] = i
		}
		members := make([]string, k)
		for e := 0; e < m; e++ {
			for i := 0; i < k; i++ {
				j := i + cfg.rng.Intn(n-i)
				pool[i], pool[j] = pool[j], pool[i]
				members[i] = labels[pool[i]]
			}
			if err = emit(s, cfg, MethodRandomUniform, members...); err != nil {
				return err
			}
		}

		return nil
	}
}
