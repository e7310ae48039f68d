// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

// Incidence marks.
const (
	srcMark        = -1.0 // source row of a directed hyperedge
	dstMark        = +1.0 // each target row of a directed hyperedge
	undirectedMark = +1.0 // every member row of an undirected hyperedge
)

// Incidence is the |V|×|E| incidence matrix of a hypergraph.
// Rows follow ascending vertex identifiers, columns ascending edge
// identifiers, so two builds of the same graph are identical.
type Incidence[T id.Index] struct {
	Mat      *Dense
	Vertices []id.VertexID[T]
	Edges    []id.EdgeID[T]

	row map[id.VertexID[T]]int
	col map[id.EdgeID[T]]int
}

// NewIncidence builds the incidence matrix of g.
//
// Undirected hyperedges put undirectedMark in every member row. Directed
// hyperedges put srcMark in the source row and dstMark in each target row.
// With WithWeighted, marks are multiplied by the step cost of the edge.
//
// Errors: ErrGraphNil; ErrUnknownVertex when a lazily validated edge names
// a vertex the graph does not hold.
// Complexity: O(|V|·|E|) space, O(|V| + Σ|domain|) fill.
func NewIncidence[T id.Index, N any, E core.Number](g *core.Graph[T, N, E], opts ...Option) (*Incidence[T], error) {
	if g == nil {
		return nil, errors.Wrap(ErrGraphNil, "NewIncidence")
	}
	o := NewMatrixOptions(opts...)

	vertices := g.NodeIDs()
	edges := g.Edges()
	mat, err := NewDense(len(vertices), len(edges))
	if err != nil {
		return nil, errors.Wrap(err, "NewIncidence")
	}
	im := &Incidence[T]{
		Mat:      mat,
		Vertices: vertices,
		Edges:    make([]id.EdgeID[T], len(edges)),
		row:      indexVertices(vertices),
		col:      make(map[id.EdgeID[T]]int, len(edges)),
	}

	for j, e := range edges {
		im.Edges[j] = e.ID
		im.col[e.ID] = j
		scale := 1.0
		if o.Weighted {
			scale = float64(search.StepCost(e))
		}
		for k, v := range e.Domain {
			i, ok := im.row[v]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownVertex, "NewIncidence: member %s of %s", v, e.ID)
			}
			mark := undirectedMark
			if e.Direction.IsDirected() {
				mark = dstMark
				if k == 0 {
					mark = srcMark
				}
			}
			if err = mat.Set(i, j, mark*scale); err != nil {
				return nil, errors.Wrapf(err, "NewIncidence: %s", e.ID)
			}
		}
	}

	return im, nil
}

// Row returns the row index of v.
func (im *Incidence[T]) Row(v id.VertexID[T]) (int, bool) {
	i, ok := im.row[v]

	return i, ok
}

// Col returns the column index of e.
func (im *Incidence[T]) Col(e id.EdgeID[T]) (int, bool) {
	j, ok := im.col[e]

	return j, ok
}

// VertexIncidence returns a copy of the row of v.
// Errors: ErrNilMatrix, ErrUnknownVertex.
func (im *Incidence[T]) VertexIncidence(v id.VertexID[T]) ([]float64, error) {
	if im == nil || im.Mat == nil {
		return nil, errors.Wrap(ErrNilMatrix, "VertexIncidence")
	}
	i, ok := im.row[v]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVertex, "VertexIncidence: %s", v)
	}

	return im.Mat.Row(i)
}

// Members returns the vertices with a non-zero entry in the column of e,
// in row order.
// Errors: ErrNilMatrix, ErrUnknownEdge.
func (im *Incidence[T]) Members(e id.EdgeID[T]) ([]id.VertexID[T], error) {
	if im == nil || im.Mat == nil {
		return nil, errors.Wrap(ErrNilMatrix, "Members")
	}
	j, ok := im.col[e]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEdge, "Members: %s", e)
	}
	col, err := im.Mat.Col(j)
	if err != nil {
		return nil, err
	}
	out := make([]id.VertexID[T], 0, len(col))
	for i, x := range col {
		if x != 0 {
			out = append(out, im.Vertices[i])
		}
	}

	return out, nil
}

// Degrees returns the number of incident hyperedges per row.
func (im *Incidence[T]) Degrees() []int {
	out := make([]int, im.Mat.r)
	im.Mat.Do(func(i, _ int, v float64) bool {
		if v != 0 {
			out[i]++
		}

		return true
	})

	return out
}

func indexVertices[T id.Index](vs []id.VertexID[T]) map[id.VertexID[T]]int {
	idx := make(map[id.VertexID[T]]int, len(vs))
	for i, v := range vs {
		idx[v] = i
	}

	return idx
}
