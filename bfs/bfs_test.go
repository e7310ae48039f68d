package bfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/bfs"
	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

type graph = core.Graph[uint32, string, int]

func vs(raws ...uint32) []id.VertexID[uint32] { return id.Vertices(raws...) }
func V(raw uint32) id.VertexID[uint32]       { return id.Vertex(raw) }

// build creates n vertices v0..v(n-1) and one hyperedge per member list.
func build(t testing.TB, n int, opts []core.GraphOption, edges ...[]uint32) *graph {
	t.Helper()
	g := core.NewGraph[uint32, string, int](opts...)
	for i := 0; i < n; i++ {
		_, err := g.AddNode(fmt.Sprint(i))
		require.NoError(t, err)
	}
	for _, members := range edges {
		_, err := g.AddEdge(vs(members...)...)
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[uint32, string, int](nil, V(0))
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, 1, nil)
	_, err = bfs.BFS(g, V(5))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = bfs.BFS(g, V(0), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	// A hook typed for another index type is rejected.
	_, err = bfs.BFS(g, V(0), bfs.WithOnVisit(func(id.VertexID[uint8], int) error { return nil }))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_HyperedgeIsOneHop(t *testing.T) {
	// e0 = {v0, v1, v2}, e1 = {v2, v3, v4}, e2 = {v4, v5}
	g := build(t, 6, nil, []uint32{0, 1, 2}, []uint32{2, 3, 4}, []uint32{4, 5})

	res, err := bfs.BFS(g, V(0))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 1, 2, 3, 4, 5), res.Order)
	assert.Equal(t, map[id.VertexID[uint32]]int{
		V(0): 0, V(1): 1, V(2): 1, V(3): 2, V(4): 2, V(5): 3,
	}, res.Depth)

	path, err := res.PathTo(V(5))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 2, 4, 5), path)
}

func TestBFS_Completeness(t *testing.T) {
	// Connected: every vertex reachable from every other.
	g := build(t, 7, nil, []uint32{0, 3}, []uint32{3, 5, 6}, []uint32{1, 2, 6}, []uint32{4, 1})

	for _, start := range g.NodeIDs() {
		w := bfs.New(g)
		res, err := w.Search(start)
		require.NoError(t, err)
		assert.ElementsMatch(t, g.NodeIDs(), res.Order, "start %s", start)
		assert.Len(t, w.Visited(), g.Order())
		for _, v := range g.NodeIDs() {
			assert.True(t, w.HasVisited(v))
		}
	}
}

func TestBFS_Disconnected(t *testing.T) {
	g := build(t, 4, nil, []uint32{0, 1}, []uint32{2, 3})

	res, err := bfs.BFS(g, V(2))
	require.NoError(t, err)
	assert.Equal(t, vs(2, 3), res.Order)

	_, err = res.PathTo(V(0))
	assert.ErrorIs(t, err, search.ErrPathNotFound)
}

func TestBFS_Directed(t *testing.T) {
	// e0 = v0 -> {v1, v2}, e1 = v3 -> {v0}
	g := build(t, 4, []core.GraphOption{core.WithDirected()}, []uint32{0, 1, 2}, []uint32{3, 0})

	res, err := bfs.BFS(g, V(0))
	require.NoError(t, err)
	assert.Equal(t, vs(0, 1, 2), res.Order)

	res, err = bfs.BFS(g, V(1))
	require.NoError(t, err)
	assert.Equal(t, vs(1), res.Order)

	res, err = bfs.BFS(g, V(3))
	require.NoError(t, err)
	assert.Equal(t, vs(3, 0, 1, 2), res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := build(t, 4, nil, []uint32{0, 1}, []uint32{1, 2}, []uint32{2, 3})

	cases := []struct {
		depth int
		want  []id.VertexID[uint32]
	}{
		{depth: 1, want: vs(0, 1)},
		{depth: 2, want: vs(0, 1, 2)},
		{depth: 0, want: vs(0, 1, 2, 3)},
		{depth: 10, want: vs(0, 1, 2, 3)},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint("depth=", tc.depth), func(t *testing.T) {
			res, err := bfs.BFS(g, V(0), bfs.WithMaxDepth(tc.depth))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Order)
		})
	}
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := build(t, 3, nil, []uint32{0, 1}, []uint32{1, 2})

	res, err := bfs.BFS(g, V(0),
		bfs.WithFilterNeighbor(func(curr, next id.VertexID[uint32]) bool {
			return !(curr == V(1) && next == V(2))
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, vs(0, 1), res.Order)
}

func TestBFS_Hooks(t *testing.T) {
	g := build(t, 3, nil, []uint32{0, 1}, []uint32{1, 2})

	var enq, vis []string
	_, err := bfs.BFS(g, V(0),
		bfs.WithOnEnqueue(func(v id.VertexID[uint32], d int) { enq = append(enq, fmt.Sprintf("%s@%d", v, d)) }),
		bfs.WithOnVisit(func(v id.VertexID[uint32], d int) error {
			vis = append(vis, fmt.Sprintf("%s@%d", v, d))

			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0@0", "v1@1", "v2@2"}, enq)
	assert.Equal(t, enq, vis)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	g := build(t, 3, nil, []uint32{0, 1}, []uint32{1, 2})
	stop := fmt.Errorf("stop")

	res, err := bfs.BFS(g, V(0), bfs.WithOnVisit(func(v id.VertexID[uint32], _ int) error {
		if v == V(1) {
			return stop
		}

		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, vs(0, 1), res.Order)
}

func TestBFS_DanglingMember(t *testing.T) {
	g := build(t, 2, []core.GraphOption{core.WithLazyValidation()}, []uint32{0, 1}, []uint32{1, 9})

	_, err := bfs.BFS(g, V(0))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestWalker_Reuse(t *testing.T) {
	g := build(t, 4, nil, []uint32{0, 1}, []uint32{2, 3})
	w := bfs.New(g)

	_, err := w.Search(V(0))
	require.NoError(t, err)
	assert.True(t, w.HasVisited(V(1)))

	_, err = w.Search(V(2))
	require.NoError(t, err)
	assert.False(t, w.HasVisited(V(1)))
	assert.Equal(t, vs(2, 3), w.Visited())
}

func TestComponents(t *testing.T) {
	g := build(t, 7, []core.GraphOption{core.WithDirected()},
		[]uint32{5, 1}, []uint32{1, 3}, []uint32{4, 0, 6},
	)

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]id.VertexID[uint32]{
		vs(0, 4, 6),
		vs(1, 3, 5),
		vs(2),
	}, comps)

	_, err = bfs.Components[uint32, string, int](nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
