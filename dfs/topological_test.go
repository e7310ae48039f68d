package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/dfs"
	"github.com/katalvlaran/hyperlath/id"
)

func TestTopologicalSort(t *testing.T) {
	// e0 = v3 -> {v1, v2}, e1 = v1 -> {v0}, e2 = v2 -> {v0, v4}
	g := build(t, 5, directed, []uint32{3, 1, 2}, []uint32{1, 0}, []uint32{2, 0, 4})

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 5)

	pos := make(map[id.VertexID[uint32]]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, edge := range g.Edges() {
		src, _ := edge.Source()
		for _, tgt := range edge.Targets() {
			assert.Less(t, pos[src], pos[tgt], "%s before %s", src, tgt)
		}
	}
	assert.Equal(t, vs(3, 2, 4, 1, 0), order)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort[uint32, string, int](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.TopologicalSort(build(t, 2, nil, []uint32{0, 1}))
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)

	cyclic := build(t, 3, directed, []uint32{0, 1, 2}, []uint32{2, 0})
	_, err = dfs.TopologicalSort(cyclic)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestFindCycle(t *testing.T) {
	acyclic := build(t, 3, directed, []uint32{0, 1, 2}, []uint32{1, 2})
	cycle, err := dfs.FindCycle(acyclic)
	require.NoError(t, err)
	assert.Nil(t, cycle)

	// v0 -> {v1}, v1 -> {v2, v3}, v3 -> {v1}
	cyclic := build(t, 4, directed, []uint32{0, 1}, []uint32{1, 2, 3}, []uint32{3, 1})
	cycle, err = dfs.FindCycle(cyclic)
	require.NoError(t, err)
	assert.Equal(t, vs(1, 3), cycle)

	_, err = dfs.FindCycle(core.NewGraph[uint32, string, int]())
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)
}
