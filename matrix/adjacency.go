// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/hyperlath/core"
	"github.com/katalvlaran/hyperlath/id"
	"github.com/katalvlaran/hyperlath/search"
)

// Adjacency is a |V|×|V| matrix over the clique expansion of a hypergraph:
// every hyperedge becomes the set of vertex pairs it lets a walker step
// between. Rows and columns follow ascending vertex identifiers.
type Adjacency[T id.Index] struct {
	Mat      *Dense
	Vertices []id.VertexID[T]

	index map[id.VertexID[T]]int
}

// NewAdjacency builds the clique-expansion adjacency of g.
//
// Entry (u,v), u≠v, counts the hyperedges through which v is a step from u
// (co-membership when undirected, source to target when directed). With
// WithWeighted it holds the cheapest such step cost instead; 0 means no step
// in both modes. With WithKeepLoops the diagonal holds the degree of u, so
// that for an undirected graph the unweighted result equals B·Bᵀ.
//
// Errors: ErrGraphNil; core.ErrNodeNotFound for a dangling lazily
// validated member.
// Complexity: O(|V|²) space, O(Σ|domain|²) fill.
func NewAdjacency[T id.Index, N any, E core.Number](g *core.Graph[T, N, E], opts ...Option) (*Adjacency[T], error) {
	if g == nil {
		return nil, errors.Wrap(ErrGraphNil, "NewAdjacency")
	}
	o := NewMatrixOptions(opts...)

	am, err := newAdjacency(g, true)
	if err != nil {
		return nil, errors.Wrap(err, "NewAdjacency")
	}
	n := len(am.Vertices)
	seen := make([]bool, n*n)
	for i, u := range am.Vertices {
		err = eachStep(g, am.index, u, func(j int, cost float64) {
			off := i*n + j
			switch {
			case !o.Weighted:
				am.Mat.data[off]++
			case !seen[off] || cost < am.Mat.data[off]:
				am.Mat.data[off] = cost
			}
			seen[off] = true
		})
		if err != nil {
			return nil, errors.Wrap(err, "NewAdjacency")
		}
		if o.KeepLoops {
			am.Mat.data[i*n+i] = float64(g.Degree(u))
		}
	}

	return am, nil
}

// Distances returns all-pairs shortest step costs of g, computed by
// Floyd–Warshall over the weighted clique expansion. Unreachable pairs hold
// +Inf; the diagonal is 0.
//
// Errors: ErrGraphNil; ErrInvalidWeight for a negative or non-finite weight;
// core.ErrNodeNotFound for a dangling member.
// Complexity: O(|V|³) time, O(|V|²) space.
func Distances[T id.Index, N any, E core.Number](g *core.Graph[T, N, E]) (*Adjacency[T], error) {
	if g == nil {
		return nil, errors.Wrap(ErrGraphNil, "Distances")
	}
	am, err := newAdjacency(g, false)
	if err != nil {
		return nil, errors.Wrap(err, "Distances")
	}
	n := len(am.Vertices)
	if err = initDistancesInPlace(am.Mat); err != nil {
		return nil, errors.Wrap(err, "Distances")
	}
	for i, u := range am.Vertices {
		var bad error
		err = eachStep(g, am.index, u, func(j int, cost float64) {
			if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
				bad = errors.Wrapf(ErrInvalidWeight, "step %s -> %s costs %v", u, am.Vertices[j], cost)

				return
			}
			if off := i*n + j; cost < am.Mat.data[off] {
				am.Mat.data[off] = cost
			}
		})
		if err == nil {
			err = bad
		}
		if err != nil {
			return nil, errors.Wrap(err, "Distances")
		}
	}
	floydWarshallInPlace(am.Mat)

	return am, nil
}

// Index returns the row/column index of v.
func (am *Adjacency[T]) Index(v id.VertexID[T]) (int, bool) {
	i, ok := am.index[v]

	return i, ok
}

// At returns the entry for the pair (u, v).
// Errors: ErrNilMatrix, ErrUnknownVertex.
func (am *Adjacency[T]) At(u, v id.VertexID[T]) (float64, error) {
	if am == nil || am.Mat == nil {
		return 0, errors.Wrap(ErrNilMatrix, "Adjacency.At")
	}
	i, ok := am.index[u]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVertex, "Adjacency.At: %s", u)
	}
	j, ok := am.index[v]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVertex, "Adjacency.At: %s", v)
	}

	return am.Mat.At(i, j)
}

// Neighbors returns the vertices with a non-zero, finite, off-diagonal
// entry in the row of v, in ascending identifier order.
func (am *Adjacency[T]) Neighbors(v id.VertexID[T]) ([]id.VertexID[T], error) {
	if am == nil || am.Mat == nil {
		return nil, errors.Wrap(ErrNilMatrix, "Adjacency.Neighbors")
	}
	i, ok := am.index[v]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVertex, "Adjacency.Neighbors: %s", v)
	}
	row, err := am.Mat.Row(i)
	if err != nil {
		return nil, err
	}
	out := make([]id.VertexID[T], 0, len(row))
	for j, x := range row {
		if j != i && x != 0 && !math.IsInf(x, 1) {
			out = append(out, am.Vertices[j])
		}
	}

	return out, nil
}

func newAdjacency[T id.Index, N any, E core.Number](g *core.Graph[T, N, E], validateNaNInf bool) (*Adjacency[T], error) {
	vertices := g.NodeIDs()
	mat, err := newDenseWithPolicy(len(vertices), len(vertices), validateNaNInf)
	if err != nil {
		return nil, err
	}

	return &Adjacency[T]{Mat: mat, Vertices: vertices, index: indexVertices(vertices)}, nil
}

// eachStep reports the column and step cost of every arc leaving u.
func eachStep[T id.Index, N any, E core.Number](
	g *core.Graph[T, N, E],
	index map[id.VertexID[T]]int,
	u id.VertexID[T],
	fn func(j int, cost float64),
) error {
	return search.Arcs(g, u, func(e core.Edge[T, E], v id.VertexID[T]) error {
		j, ok := index[v]
		if !ok {
			return errors.Wrapf(ErrUnknownVertex, "member %s of %s", v, e.ID)
		}
		fn(j, float64(search.StepCost(e)))

		return nil
	})
}
