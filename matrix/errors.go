// SPDX-License-Identifier: MIT

package matrix

import "github.com/pkg/errors"

// Every message is prefixed with "matrix: ..." so that errors.Is works on the
// sentinels below after any amount of errors.Wrapf context.
var (
	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates a vertex absent from the row index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrUnknownEdge indicates a hyperedge absent from the column index.
	ErrUnknownEdge = errors.New("matrix: unknown edge id")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight
	// where a distance is required.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")
)
