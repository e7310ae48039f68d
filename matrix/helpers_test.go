// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

type graph = core.Graph[uint32, string, int]

func vs(raws ...uint32) []id.VertexID[uint32] { return id.Vertices(raws...) }
func V(raw uint32) id.VertexID[uint32]       { return id.Vertex(raw) }
func E(raw uint32) id.EdgeID[uint32]         { return id.Edge(raw) }

// hyper is one fixture hyperedge; w == 0 adds it unweighted.
type hyper struct {
	w       int
	members []uint32
}

func build(t testing.TB, n int, opts []core.GraphOption, edges ...hyper) *graph {
	t.Helper()
	g := core.NewGraph[uint32, string, int](opts...)
	for i := 0; i < n; i++ {
		_, err := g.AddNode(fmt.Sprint(i))
		require.NoError(t, err)
	}
	for _, h := range edges {
		var err error
		if h.w == 0 {
			_, err = g.AddEdge(vs(h.members...)...)
		} else {
			_, err = g.AddSurface(h.w, vs(h.members...)...)
		}
		require.NoError(t, err)
	}

	return g
}

// triad: e0 = {v0,v1,v2}, e1 = {v1,v3} (weight 4), e2 = {v2,v3}.
func triad(t testing.TB, opts ...core.GraphOption) *graph {
	return build(t, 4, opts,
		hyper{0, []uint32{0, 1, 2}},
		hyper{4, []uint32{1, 3}},
		hyper{0, []uint32{2, 3}},
	)
}

func rowsOf(t testing.TB, rows, cols int, data ...float64) [][]float64 {
	t.Helper()
	require.Len(t, data, rows*cols)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = data[i*cols : (i+1)*cols]
	}

	return out
}

type matrixLike interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
}

func dump(t testing.TB, m matrixLike) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}
