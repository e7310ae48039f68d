// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hyperlath/matrix"
)

func benchGraph(b *testing.B, n, m int) *graph {
	rng := rand.New(rand.NewSource(1))
	edges := make([]hyper, m)
	for i := range edges {
		members := make([]uint32, 1+rng.Intn(5))
		for j := range members {
			members[j] = uint32(rng.Intn(n))
		}
		edges[i] = hyper{1 + rng.Intn(20), members}
	}

	return build(b, n, nil, edges...)
}

func BenchmarkNewIncidence(b *testing.B) {
	g := benchGraph(b, 200, 400)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.NewIncidence(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistances(b *testing.B) {
	g := benchGraph(b, 120, 240)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Distances(g); err != nil {
			b.Fatal(err)
		}
	}
}
