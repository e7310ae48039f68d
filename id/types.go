package id

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Sentinel errors for raw index handling.
var (
	// ErrIndexOutOfBounds indicates a generator cannot produce another index
	// without leaving the domain of its raw type.
	ErrIndexOutOfBounds = errors.New("id: index out of bounds")

	// ErrInvalidIndex indicates a textual index that is malformed or does not
	// fit the raw type.
	ErrInvalidIndex = errors.New("id: invalid index")
)

const (
	vertexPrefix = "v"
	edgePrefix   = "e"
)

// Index is the set of raw representations an identifier may wrap.
// Every Go integer type is totally ordered and hashable, which is all the
// storage engine and the search algorithms rely on.
type Index interface {
	constraints.Integer
}

// VertexID identifies a vertex. The zero value wraps raw index 0.
type VertexID[T Index] struct {
	raw T
}

// EdgeID identifies a hyperedge. The zero value wraps raw index 0.
type EdgeID[T Index] struct {
	raw T
}

// Vertex wraps raw as a vertex identifier.
func Vertex[T Index](raw T) VertexID[T] { return VertexID[T]{raw: raw} }

// Edge wraps raw as an edge identifier.
func Edge[T Index](raw T) EdgeID[T] { return EdgeID[T]{raw: raw} }

// Raw returns the wrapped index.
func (v VertexID[T]) Raw() T { return v.raw }

// Compare orders vertex identifiers by raw value: -1, 0 or +1.
func (v VertexID[T]) Compare(o VertexID[T]) int { return cmp.Compare(v.raw, o.raw) }

// Less reports whether v orders strictly before o.
func (v VertexID[T]) Less(o VertexID[T]) bool { return v.raw < o.raw }

// String renders the identifier as "v<raw>".
func (v VertexID[T]) String() string { return vertexPrefix + formatRaw(v.raw) }

// Raw returns the wrapped index.
func (e EdgeID[T]) Raw() T { return e.raw }

// Compare orders edge identifiers by raw value: -1, 0 or +1.
func (e EdgeID[T]) Compare(o EdgeID[T]) int { return cmp.Compare(e.raw, o.raw) }

// Less reports whether e orders strictly before o.
func (e EdgeID[T]) Less(o EdgeID[T]) bool { return e.raw < o.raw }

// String renders the identifier as "e<raw>".
func (e EdgeID[T]) String() string { return edgePrefix + formatRaw(e.raw) }

// Vertices wraps every raw value as a vertex identifier, preserving order.
func Vertices[T Index](raws ...T) []VertexID[T] {
	out := make([]VertexID[T], len(raws))
	for i, r := range raws {
		out[i] = VertexID[T]{raw: r}
	}

	return out
}

// ParseVertex parses "12" or "v12" into a vertex identifier.
func ParseVertex[T Index](s string) (VertexID[T], error) {
	raw, err := Parse[T](strings.TrimPrefix(s, vertexPrefix))
	if err != nil {
		return VertexID[T]{}, err
	}

	return VertexID[T]{raw: raw}, nil
}

// ParseEdge parses "12" or "e12" into an edge identifier.
func ParseEdge[T Index](s string) (EdgeID[T], error) {
	raw, err := Parse[T](strings.TrimPrefix(s, edgePrefix))
	if err != nil {
		return EdgeID[T]{}, err
	}

	return EdgeID[T]{raw: raw}, nil
}

// Parse converts a decimal string into a raw index of type T.
// Returns ErrInvalidIndex when s is not an integer or does not fit T.
// Complexity: O(len(s)).
func Parse[T Index](s string) (T, error) {
	var zero T
	if s == "" {
		return zero, errors.Wrap(ErrInvalidIndex, "empty string")
	}
	if isSigned[T]() {
		x, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, errors.Wrapf(ErrInvalidIndex, "parse %q: %v", s, err)
		}
		t := T(x)
		if int64(t) != x {
			return zero, errors.Wrapf(ErrInvalidIndex, "%q overflows %T", s, zero)
		}

		return t, nil
	}
	x, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return zero, errors.Wrapf(ErrInvalidIndex, "parse %q: %v", s, err)
	}
	t := T(x)
	if uint64(t) != x {
		return zero, errors.Wrapf(ErrInvalidIndex, "%q overflows %T", s, zero)
	}

	return t, nil
}

// Kind names the raw representation T, e.g. "uint32".
func Kind[T Index]() string {
	var zero T

	return fmt.Sprintf("%T", zero)
}

// MaxIndex returns the largest value representable by T.
// Complexity: O(width(T)).
func MaxIndex[T Index]() T {
	m := T(1)
	for {
		next := m<<1 | 1
		if next <= m {
			return m
		}
		m = next
	}
}

// isSigned reports whether T is a signed integer type.
func isSigned[T Index]() bool {
	var zero T

	return zero-1 < zero
}

// formatRaw renders raw in base 10 without going through fmt.
func formatRaw[T Index](raw T) string {
	if isSigned[T]() {
		return strconv.FormatInt(int64(raw), 10)
	}

	return strconv.FormatUint(uint64(raw), 10)
}
