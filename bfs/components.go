package bfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
)

// Components partitions the vertices of g into connected components, where
// two vertices are connected if a chain of shared hyperedges links them.
// Direction is ignored, so on directed graphs these are the weakly connected
// components.
//
// Each component is sorted ascending and components are ordered by their
// smallest member. Isolated vertices form singleton components.
//
// Errors: ErrGraphNil; core.ErrNodeNotFound on dangling members (lazy graphs).
// Complexity: O(V + Σ|domain|) plus sorting.
func Components[T id.Index, N any, E any](g *core.Graph[T, N, E]) ([][]id.VertexID[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := core.NewVertexSet[T]()
	var out [][]id.VertexID[T]
	for _, root := range g.NodeIDs() {
		if !seen.Add(root) {
			continue
		}
		comp := core.NewVertexSet(root)
		queue := []id.VertexID[T]{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			ns, err := g.Neighbors(cur)
			if err != nil {
				return nil, errors.Wrapf(err, "bfs: components at %s", cur)
			}
			for nb := range ns {
				if seen.Add(nb) {
					comp.Add(nb)
					queue = append(queue, nb)
				}
			}
		}
		out = append(out, comp.Sorted())
	}

	return out, nil
}
